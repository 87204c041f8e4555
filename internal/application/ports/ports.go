package ports

import (
	"context"
	"time"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// SupplierScraper puerto de salida hacia la página de catálogo del proveedor.
// La implementación concreta (HTTP + goquery) vive en infrastructure/scraper.
type SupplierScraper interface {
	// Scrape descarga la página y devuelve los productos en orden de documento.
	// El contexto debe llevar un timeout; la llamada sale a internet.
	Scrape(ctx context.Context, url string) ([]entity.SupplierProduct, error)
}

// StockReportRenderer genera el documento del resumen de stock.
type StockReportRenderer interface {
	RenderStockOverview(ctx context.Context, generatedAt time.Time, lines []dto.StockReportLine) ([]byte, error)
}
