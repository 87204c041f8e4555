// Package metrics registra las métricas Prometheus del servicio (expuestas en /metrics).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldstock_http_requests_total",
		Help: "Total de peticiones HTTP",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fieldstock_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	scrapeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fieldstock_scrape_duration_seconds",
		Help:    "Duración de la descarga y lectura de la página del proveedor",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 25},
	}, []string{"result"})

	scrapedProducts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fieldstock_scraped_products_total",
		Help: "Productos extraídos de páginas de proveedor",
	})

	webhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldstock_webhook_events_total",
		Help: "Eventos recibidos del webhook de OptimoRoute por resultado",
	}, []string{"result"})
)

// Resultados usados como etiqueta.
const (
	ResultOK          = "ok"
	ResultFetchError  = "fetch_error"
	ResultParseError  = "parse_error"
	ResultIgnored     = "ignored"
	ResultStoreError  = "store_error"
	ResultBadSecret   = "bad_secret"
	ResultDecodeError = "decode_error"
)

// ObserveHTTPRequest registra una petición HTTP.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveScrape registra un intento de scraping y cuántos productos devolvió.
func ObserveScrape(result string, products int, duration time.Duration) {
	scrapeDuration.WithLabelValues(result).Observe(duration.Seconds())
	if products > 0 {
		scrapedProducts.Add(float64(products))
	}
}

// ObserveWebhook cuenta un evento del webhook.
func ObserveWebhook(result string) {
	webhookEvents.WithLabelValues(result).Inc()
}
