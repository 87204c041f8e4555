package repository

import (
	"context"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// WorkOrderRepository puerto de órdenes de trabajo.
type WorkOrderRepository interface {
	// MarkCompleted hace upsert por OrderID dejando status=completed y completed_at.
	// technicianEmail vacío no sobrescribe el valor existente.
	MarkCompleted(ctx context.Context, orderID, technicianEmail, completedAt string) error
	GetByOrderID(ctx context.Context, orderID string) (*entity.WorkOrder, error)
}
