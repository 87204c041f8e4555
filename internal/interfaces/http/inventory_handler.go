package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/application/inventory"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// InventoryHandler sincronización y consulta del catálogo (protegido).
type InventoryHandler struct {
	uc  *inventory.SyncUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.SyncUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log.Component("inventory")}
}

// Scrape godoc
// @Summary      Sincronizar catálogo desde la página del proveedor
// @Description  Solo oficina. Descarga url, extrae (SKU, nombre) y hace upsert por SKU de hasta max_items artículos.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScrapeRequest  true  "url, max_items (por defecto 200)"
// @Success      200   {object}  dto.ScrapeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /inventory/scrape [post]
func (h *InventoryHandler) Scrape(c *fiber.Ctx) error {
	var in dto.ScrapeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if done, err := validateBody(c, in); done {
		return err
	}
	n, err := h.uc.Sync(c.Context(), in.URL, in.Limit())
	if err != nil {
		if errors.Is(err, inventory.ErrScrapeFailed) {
			h.log.Warn().Err(err).Str("url", in.URL).Str("user_id", GetUserID(c)).Msg("sincronización de catálogo fallida")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SCRAPE_FAILED", Message: "no se pudo leer la página del proveedor"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return internalError(c, h.log, err, "inventory sync")
	}
	h.log.Info().Str("url", in.URL).Int("upserted", n).Msg("catálogo sincronizado")
	return c.JSON(dto.ScrapeResponse{Status: "ok", Upserted: n})
}

// List godoc
// @Summary      Listar catálogo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InventoryItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /inventory/items [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, h.log, err, "inventory list")
	}
	return c.JSON(items)
}
