package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
)

func TestRenderStockOverview_GeneraPDF(t *testing.T) {
	g := NewMarotoPDFGenerator("field-stock-api", "mijninstallatiepartner")
	lines := []dto.StockReportLine{
		{TechnicianName: "Jan", TechnicianEmail: "jan@example.com", SKU: "1001", ItemName: "Kabel", Quantity: 12},
		{TechnicianName: "Piet", SKU: "2002", Quantity: 1500},
	}

	out, err := g.RenderStockOverview(context.Background(), time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), lines)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderStockOverview_SinLineas(t *testing.T) {
	out, err := NewMarotoPDFGenerator("", "").RenderStockOverview(context.Background(), time.Now(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatThousands(t *testing.T) {
	cases := map[int]string{0: "0", 999: "999", 1000: "1.000", 25000: "25.000", 1000000: "1.000.000", -1234: "-1.234"}
	for in, want := range cases {
		assert.Equal(t, want, formatThousands(in))
	}
}
