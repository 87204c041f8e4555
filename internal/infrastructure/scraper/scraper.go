// Package scraper descarga la página de catálogo de un proveedor y extrae sus productos.
package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/jhoicas/fieldstock-api/internal/application/ports"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/observability/metrics"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

var _ ports.SupplierScraper = (*Scraper)(nil)

var (
	// ErrFetch la página no se pudo descargar (red, timeout o status distinto de 2xx).
	ErrFetch = errors.New("scraper: no se pudo descargar la página")
	// ErrParse el contenido no se pudo interpretar como HTML.
	ErrParse = errors.New("scraper: no se pudo interpretar la página")
)

// Valores por defecto.
const (
	DefaultTimeout   = 25 * time.Second
	DefaultUserAgent = "Mozilla/5.0"
	MaxBodyBytes     = 10 << 20
)

// FetchError detalle de una descarga fallida.
type FetchError struct {
	URL        string
	StatusCode int // 0 si no hubo respuesta
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("scraper: GET %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("scraper: GET %s: %v", e.URL, e.Err)
}

// Unwrap permite errors.Is(err, ErrFetch) y llegar a la causa de red.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetch}
	}
	return []error{ErrFetch, e.Err}
}

// Config opciones del scraper.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// Scraper cliente HTTP para páginas de proveedor.
type Scraper struct {
	client    *http.Client
	userAgent string
	log       *logger.Logger
}

// New crea un scraper. Valores vacíos toman los por defecto.
func New(cfg Config, log *logger.Logger) *Scraper {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Scraper{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		log:       log.Component("scraper"),
	}
}

// Fetch descarga url y devuelve el cuerpo convertido a UTF-8 según el charset de Content-Type.
func (s *Scraper) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(decodeCharset(io.LimitReader(resp.Body, MaxBodyBytes), resp.Header.Get("Content-Type")))
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return body, nil
}

// Scrape descarga la página y extrae los productos.
func (s *Scraper) Scrape(ctx context.Context, url string) ([]entity.SupplierProduct, error) {
	start := time.Now()
	body, err := s.Fetch(ctx, url)
	if err != nil {
		metrics.ObserveScrape(metrics.ResultFetchError, 0, time.Since(start))
		return nil, err
	}
	products, err := ParseProducts(bytes.NewReader(body))
	if err != nil {
		metrics.ObserveScrape(metrics.ResultParseError, 0, time.Since(start))
		return nil, err
	}
	metrics.ObserveScrape(metrics.ResultOK, len(products), time.Since(start))
	s.log.Debug().Str("url", url).Int("products", len(products)).Int("bytes", len(body)).Msg("página de proveedor procesada")
	return products, nil
}

// decodeCharset envuelve r con el decodificador del charset declarado.
// Charsets desconocidos o ausentes se leen tal cual.
func decodeCharset(r io.Reader, contentType string) io.Reader {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return r
	}
	name := params["charset"]
	if name == "" {
		return r
	}
	enc, err := htmlindex.Get(name)
	if err != nil || enc == nil {
		return r
	}
	return enc.NewDecoder().Reader(r)
}
