package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/application/ports"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

// ErrScrapeFailed la página del proveedor no se pudo descargar o interpretar.
// El detalle queda en el error envuelto; al cliente solo llega un mensaje genérico.
var ErrScrapeFailed = errors.New("no se pudo leer el catálogo del proveedor")

// SyncUseCase sincroniza el catálogo maestro con la página de un proveedor.
type SyncUseCase struct {
	scraper    ports.SupplierScraper
	itemRepo   repository.InventoryItemRepository
	supplierID string
	now        func() time.Time
}

// NewSyncUseCase construye el caso de uso. supplierID vacío usa el proveedor por defecto.
func NewSyncUseCase(scraper ports.SupplierScraper, itemRepo repository.InventoryItemRepository, supplierID string) *SyncUseCase {
	if supplierID == "" {
		supplierID = entity.DefaultSupplier
	}
	return &SyncUseCase{
		scraper:    scraper,
		itemRepo:   itemRepo,
		supplierID: supplierID,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Sync descarga url y hace upsert por SKU de los primeros maxItems productos.
// Devuelve cuántos artículos se escribieron.
func (uc *SyncUseCase) Sync(ctx context.Context, url string, maxItems int) (int, error) {
	if url == "" || maxItems < 1 || maxItems > dto.MaxMaxItems {
		return 0, domain.ErrInvalidInput
	}
	products, err := uc.scraper.Scrape(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScrapeFailed, err)
	}
	if len(products) > maxItems {
		products = products[:maxItems]
	}

	now := uc.now()
	upserted := 0
	for _, p := range products {
		item := &entity.InventoryItem{
			SKU:       p.SKU,
			Name:      p.Name,
			Supplier:  uc.supplierID,
			Active:    true,
			UpdatedAt: now,
		}
		if err := uc.itemRepo.UpsertBySKU(ctx, item); err != nil {
			return upserted, fmt.Errorf("upsert sku %s: %w", p.SKU, err)
		}
		upserted++
	}
	return upserted, nil
}

// List devuelve el catálogo completo ordenado por SKU.
func (uc *SyncUseCase) List(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

func toItemResponse(it *entity.InventoryItem) dto.InventoryItemResponse {
	resp := dto.InventoryItemResponse{
		SKU:         it.SKU,
		Name:        it.Name,
		Description: it.Description,
		Unit:        it.Unit,
		Supplier:    it.Supplier,
		Active:      it.Active,
		UpdatedAt:   it.UpdatedAt,
	}
	if it.Price != nil {
		s := it.Price.StringFixed(2)
		resp.Price = &s
	}
	return resp
}
