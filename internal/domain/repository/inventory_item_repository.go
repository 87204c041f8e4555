package repository

import (
	"context"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// InventoryItemRepository puerto del catálogo maestro.
type InventoryItemRepository interface {
	// UpsertBySKU inserta o actualiza (name, supplier, active, updated_at) usando el SKU como clave.
	UpsertBySKU(ctx context.Context, item *entity.InventoryItem) error
	GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error)
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	Count(ctx context.Context) (int64, error)
}
