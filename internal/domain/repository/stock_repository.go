package repository

import (
	"context"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// StockRepository puerto del stock por técnico.
type StockRepository interface {
	// Upsert inserta o actualiza la cantidad usando (UserID, SKU) como clave compuesta.
	Upsert(ctx context.Context, stock *entity.TechnicianStock) error
	ListByUser(ctx context.Context, userID string) ([]*entity.TechnicianStock, error)
	ListAll(ctx context.Context) ([]*entity.TechnicianStock, error)
}
