package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo catálogo maestro sobre la tabla inventoryitem.
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador.
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const itemColumns = `sku, name, COALESCE(description, ''), COALESCE(unit, ''), supplier, price, active, updated_at`

// UpsertBySKU inserta o actualiza name, supplier, active y updated_at.
// Description, unit y price solo se escriben al insertar.
func (r *InventoryItemRepo) UpsertBySKU(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventoryitem (sku, name, description, unit, supplier, price, active, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, COALESCE($8, now()))
		ON CONFLICT (sku)
		DO UPDATE SET name = EXCLUDED.name, supplier = EXCLUDED.supplier,
			active = EXCLUDED.active, updated_at = EXCLUDED.updated_at`
	var updatedAt any
	if !it.UpdatedAt.IsZero() {
		updatedAt = it.UpdatedAt
	}
	_, err := r.q.Exec(ctx, query, it.SKU, it.Name, it.Description, it.Unit, it.Supplier, it.Price, it.Active, updatedAt)
	if err != nil {
		return fmt.Errorf("upsert inventoryitem: %w", err)
	}
	return nil
}

// GetBySKU obtiene un artículo por SKU.
func (r *InventoryItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	it, err := scanItem(r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventoryitem WHERE sku = $1`, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventoryitem: %w", err)
	}
	return it, nil
}

// List devuelve el catálogo ordenado por SKU.
func (r *InventoryItemRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+itemColumns+` FROM inventoryitem ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("list inventoryitem: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventoryitem: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Count número de artículos.
func (r *InventoryItemRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM inventoryitem`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count inventoryitem: %w", err)
	}
	return n, nil
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(&it.SKU, &it.Name, &it.Description, &it.Unit, &it.Supplier, &it.Price, &it.Active, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
