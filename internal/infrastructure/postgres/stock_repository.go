package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Upsert inserta o actualiza la cantidad por (user_id, sku) y devuelve el id de la fila.
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.TechnicianStock) error {
	query := `
		INSERT INTO technicianstock (id, user_id, sku, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, sku)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()
		RETURNING id, quantity, updated_at`
	err := r.q.QueryRow(ctx, query, uuid.New().String(), stock.UserID, stock.SKU, entity.ClampQuantity(stock.Quantity)).
		Scan(&stock.ID, &stock.Quantity, &stock.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert technicianstock: %w", err)
	}
	return nil
}

// ListByUser filas de un técnico ordenadas por SKU.
func (r *StockRepo) ListByUser(ctx context.Context, userID string) ([]*entity.TechnicianStock, error) {
	return r.list(ctx, `
		SELECT id, user_id, sku, quantity, updated_at
		FROM technicianstock WHERE user_id = $1 ORDER BY sku`, userID)
}

// ListAll todas las filas, ordenadas por técnico y SKU.
func (r *StockRepo) ListAll(ctx context.Context) ([]*entity.TechnicianStock, error) {
	return r.list(ctx, `
		SELECT id, user_id, sku, quantity, updated_at
		FROM technicianstock ORDER BY user_id, sku`)
}

func (r *StockRepo) list(ctx context.Context, query string, args ...any) ([]*entity.TechnicianStock, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list technicianstock: %w", err)
	}
	defer rows.Close()
	var list []*entity.TechnicianStock
	for rows.Next() {
		var s entity.TechnicianStock
		if err := rows.Scan(&s.ID, &s.UserID, &s.SKU, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan technicianstock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
