package workorder

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

// WorkOrderUseCase registra la finalización de órdenes notificada por OptimoRoute.
type WorkOrderUseCase struct {
	repo repository.WorkOrderRepository
	now  func() time.Time
}

// NewWorkOrderUseCase construye el caso de uso.
func NewWorkOrderUseCase(repo repository.WorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Complete marca la orden como completada (la crea si no existe).
// completed_at se guarda tal como llega; si falta se usa la hora del servidor.
// El campo status del payload no se interpreta.
func (uc *WorkOrderUseCase) Complete(ctx context.Context, in dto.RouteCompletionRequest) error {
	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" {
		return domain.ErrInvalidInput
	}
	completedAt := strings.TrimSpace(in.CompletedAt)
	if completedAt == "" {
		completedAt = uc.now().Format(time.RFC3339)
	}
	email := strings.ToLower(strings.TrimSpace(in.TechnicianEmail))
	return uc.repo.MarkCompleted(ctx, orderID, email, completedAt)
}
