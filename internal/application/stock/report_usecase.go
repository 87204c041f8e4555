package stock

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/application/ports"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

// ReportUseCase arma el informe de stock de todos los técnicos con nombre de técnico y artículo.
type ReportUseCase struct {
	stockRepo repository.StockRepository
	userRepo  repository.UserRepository
	itemRepo  repository.InventoryItemRepository
	renderer  ports.StockReportRenderer
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	stockRepo repository.StockRepository,
	userRepo repository.UserRepository,
	itemRepo repository.InventoryItemRepository,
	renderer ports.StockReportRenderer,
) *ReportUseCase {
	return &ReportUseCase{
		stockRepo: stockRepo,
		userRepo:  userRepo,
		itemRepo:  itemRepo,
		renderer:  renderer,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Lines devuelve las líneas del informe ordenadas por técnico y SKU.
// Técnicos o artículos que ya no existen se muestran con su id/SKU.
func (uc *ReportUseCase) Lines(ctx context.Context) ([]dto.StockReportLine, error) {
	rows, err := uc.stockRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	itemNames := make(map[string]string, len(items))
	for _, it := range items {
		itemNames[it.SKU] = it.Name
	}

	type who struct{ name, email string }
	users := make(map[string]who)
	lines := make([]dto.StockReportLine, 0, len(rows))
	for _, r := range rows {
		w, ok := users[r.UserID]
		if !ok {
			u, err := uc.userRepo.GetByID(ctx, r.UserID)
			if err != nil {
				return nil, err
			}
			w = who{name: r.UserID}
			if u != nil {
				w = who{name: u.Name, email: u.Email}
			}
			users[r.UserID] = w
		}
		lines = append(lines, dto.StockReportLine{
			TechnicianName:  w.name,
			TechnicianEmail: w.email,
			SKU:             r.SKU,
			ItemName:        itemNames[r.SKU],
			Quantity:        r.Quantity,
		})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].TechnicianName != lines[j].TechnicianName {
			return lines[i].TechnicianName < lines[j].TechnicianName
		}
		return lines[i].SKU < lines[j].SKU
	})
	return lines, nil
}

// OverviewPDF genera el informe en PDF.
func (uc *ReportUseCase) OverviewPDF(ctx context.Context) ([]byte, error) {
	lines, err := uc.Lines(ctx)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderStockOverview(ctx, uc.now(), lines)
}
