package stock

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

// StockUseCase stock personal de técnicos y resumen para oficina.
type StockUseCase struct {
	repo repository.StockRepository
	now  func() time.Time
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Update fija la cantidad de un SKU para el técnico. Cantidades negativas quedan en 0.
func (uc *StockUseCase) Update(ctx context.Context, userID string, in dto.StockUpdateRequest) error {
	sku := strings.TrimSpace(in.SKU)
	if userID == "" || sku == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Upsert(ctx, &entity.TechnicianStock{
		UserID:    userID,
		SKU:       sku,
		Quantity:  entity.ClampQuantity(in.Quantity),
		UpdatedAt: uc.now(),
	})
}

// Mine lista el stock del técnico.
func (uc *StockUseCase) Mine(ctx context.Context, userID string) ([]dto.StockRow, error) {
	rows, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockRow{
			ID:        r.ID,
			UserID:    r.UserID,
			SKU:       r.SKU,
			Quantity:  r.Quantity,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return out, nil
}

// Overview lista todas las filas de todos los técnicos, sin filtrar.
func (uc *StockUseCase) Overview(ctx context.Context) ([]dto.StockOverviewRow, error) {
	rows, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockOverviewRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockOverviewRow{ID: r.ID, UserID: r.UserID, SKU: r.SKU, Quantity: r.Quantity})
	}
	return out, nil
}
