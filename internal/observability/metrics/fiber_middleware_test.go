package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiberMiddleware_TraficoMixto_EtiquetasEstables(t *testing.T) {
	app := fiber.New()
	app.Use(FiberMiddleware())
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/stock/mine", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/stock/update", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/optimoroute/webhook", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 20; i++ {
		for _, r := range []struct{ method, path string }{
			{http.MethodPost, "/stock/update"},
			{http.MethodGet, "/stock/mine"},
			{http.MethodPost, "/optimoroute/webhook"},
			{http.MethodGet, "/health"},
		} {
			req := httptest.NewRequest(r.method, r.path, strings.NewReader(`{"sku":"X","quantity":1}`))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			resp.Body.Close()
		}
	}

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err, "las series no deben corromperse ni duplicarse")

	found := false
	for _, mf := range families {
		if mf.GetName() != "fieldstock_http_requests_total" {
			continue
		}
		found = true
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "method" {
					assert.Contains(t, []string{http.MethodGet, http.MethodPost}, l.GetValue())
				}
			}
		}
	}
	assert.True(t, found)
}
