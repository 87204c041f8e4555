package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/application/stock"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/infrastructure/memory"
)

func TestUpdate_CantidadNegativa_GuardaCero(t *testing.T) {
	uc := stock.NewStockUseCase(memory.NewStore().Stock())
	ctx := context.Background()

	require.NoError(t, uc.Update(ctx, "tech-1", dto.StockUpdateRequest{SKU: "X", Quantity: -5}))

	rows, err := uc.Mine(ctx, "tech-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Quantity)
}

func TestUpdate_MismoSKU_UnaFilaUltimoValor(t *testing.T) {
	uc := stock.NewStockUseCase(memory.NewStore().Stock())
	ctx := context.Background()

	require.NoError(t, uc.Update(ctx, "tech-1", dto.StockUpdateRequest{SKU: "X", Quantity: 3}))
	rows, err := uc.Mine(ctx, "tech-1")
	require.NoError(t, err)
	firstID := rows[0].ID

	require.NoError(t, uc.Update(ctx, "tech-1", dto.StockUpdateRequest{SKU: "X", Quantity: 7}))
	rows, err = uc.Mine(ctx, "tech-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].Quantity)
	assert.Equal(t, firstID, rows[0].ID)
}

func TestUpdate_SKUVacio(t *testing.T) {
	uc := stock.NewStockUseCase(memory.NewStore().Stock())
	err := uc.Update(context.Background(), "tech-1", dto.StockUpdateRequest{SKU: "  ", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOverview_TodosLosTecnicos(t *testing.T) {
	uc := stock.NewStockUseCase(memory.NewStore().Stock())
	ctx := context.Background()
	require.NoError(t, uc.Update(ctx, "tech-1", dto.StockUpdateRequest{SKU: "X", Quantity: 1}))
	require.NoError(t, uc.Update(ctx, "tech-2", dto.StockUpdateRequest{SKU: "X", Quantity: 2}))
	require.NoError(t, uc.Update(ctx, "tech-2", dto.StockUpdateRequest{SKU: "Y", Quantity: 4}))

	rows, err := uc.Overview(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	mine, err := uc.Mine(ctx, "tech-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
