package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// maxDiagnosticCollections límite de colecciones listadas en /test.
const maxDiagnosticCollections = 10

// SystemInfo datos estáticos que /test y /health reportan.
type SystemInfo struct {
	Service         string
	Driver          string
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// SystemHandler endpoints públicos de estado.
type SystemHandler struct {
	store repository.StoreInspector
	info  SystemInfo
	log   *logger.Logger
}

// NewSystemHandler construye el handler.
func NewSystemHandler(store repository.StoreInspector, info SystemInfo, log *logger.Logger) *SystemHandler {
	return &SystemHandler{store: store, info: info, log: log}
}

// Root godoc
// @Summary  Mensaje de bienvenida
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Field Stock API running"})
}

// Health godoc
// @Summary  Liveness
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.info.Service})
}

// Diagnostic godoc
// @Summary      Diagnóstico del store
// @Description  Nunca falla: los errores del store se reflejan en los campos database y connection_status.
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.DiagnosticResponse
// @Router       /test [get]
func (h *SystemHandler) Diagnostic(c *fiber.Ctx) error {
	resp := dto.DiagnosticResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setMarker(h.info.DatabaseURLSet),
		DatabaseName:     setMarker(h.info.DatabaseNameSet),
		Driver:           h.info.Driver,
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if h.store == nil {
		resp.Database = "⚠️  Available but not initialized"
		return c.JSON(resp)
	}
	if err := h.store.Ping(c.Context()); err != nil {
		h.log.Warn().Err(err).Msg("diagnóstico: ping fallido")
		resp.Database = "❌ Error: " + truncate(err.Error(), 50)
		return c.JSON(resp)
	}
	resp.Database = "✅ Available"
	names, err := h.store.CollectionNames(c.Context())
	if err != nil {
		h.log.Warn().Err(err).Msg("diagnóstico: listar colecciones")
		resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		return c.JSON(resp)
	}
	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	if names != nil {
		resp.Collections = names
	}
	resp.Database = "✅ Connected & Working"
	resp.ConnectionStatus = "Connected"
	return c.JSON(resp)
}

func setMarker(ok bool) string {
	if ok {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
