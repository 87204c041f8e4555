package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo órdenes de trabajo sobre la tabla workorder.
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador.
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// MarkCompleted upsert por order_id; technician_email vacío conserva el valor anterior.
func (r *WorkOrderRepo) MarkCompleted(ctx context.Context, orderID, technicianEmail, completedAt string) error {
	query := `
		INSERT INTO workorder (order_id, technician_email, status, completed_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, now())
		ON CONFLICT (order_id)
		DO UPDATE SET status = EXCLUDED.status, completed_at = EXCLUDED.completed_at,
			technician_email = COALESCE(EXCLUDED.technician_email, workorder.technician_email),
			updated_at = now()`
	if _, err := r.q.Exec(ctx, query, orderID, technicianEmail, entity.WorkOrderCompleted, completedAt); err != nil {
		return fmt.Errorf("upsert workorder: %w", err)
	}
	return nil
}

// GetByOrderID obtiene una orden por order_id.
func (r *WorkOrderRepo) GetByOrderID(ctx context.Context, orderID string) (*entity.WorkOrder, error) {
	query := `
		SELECT order_id, COALESCE(technician_id, ''), COALESCE(technician_email, ''), status,
			COALESCE(external_ref, ''), COALESCE(completed_at, ''), updated_at
		FROM workorder WHERE order_id = $1`
	var wo entity.WorkOrder
	err := r.q.QueryRow(ctx, query, orderID).Scan(
		&wo.OrderID, &wo.TechnicianID, &wo.TechnicianEmail, &wo.Status, &wo.ExternalRef, &wo.CompletedAt, &wo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workorder: %w", err)
	}
	return &wo, nil
}
