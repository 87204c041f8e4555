package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/application/stock"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// StockHandler stock personal de técnicos y resumen de oficina.
type StockHandler struct {
	uc     *stock.StockUseCase
	report *stock.ReportUseCase
	log    *logger.Logger
}

// NewStockHandler construye el handler. report puede ser nil (sin PDF).
func NewStockHandler(uc *stock.StockUseCase, report *stock.ReportUseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{uc: uc, report: report, log: log}
}

// Mine godoc
// @Summary      Mi stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockRow
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /stock/mine [get]
func (h *StockHandler) Mine(c *fiber.Ctx) error {
	rows, err := h.uc.Mine(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c, h.log, err, "stock mine")
	}
	return c.JSON(rows)
}

// Update godoc
// @Summary      Actualizar cantidad de un SKU
// @Description  Cantidades negativas se guardan como 0.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockUpdateRequest  true  "sku, quantity"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /stock/update [post]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.StockUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if done, err := validateBody(c, in); done {
		return err
	}
	if err := h.uc.Update(c.Context(), GetUserID(c), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku requerido"})
		}
		return internalError(c, h.log, err, "stock update")
	}
	return c.JSON(dto.StatusOK)
}

// Overview godoc
// @Summary      Stock de todos los técnicos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockOverviewRow
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /stock/overview [get]
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	rows, err := h.uc.Overview(c.Context())
	if err != nil {
		return internalError(c, h.log, err, "stock overview")
	}
	return c.JSON(rows)
}

// OverviewPDF godoc
// @Summary      Informe PDF de stock por técnico
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /stock/overview.pdf [get]
func (h *StockHandler) OverviewPDF(c *fiber.Ctx) error {
	if h.report == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "informe no disponible"})
	}
	doc, err := h.report.OverviewPDF(c.Context())
	if err != nil {
		return internalError(c, h.log, err, "stock overview pdf")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stock-overview.pdf"`)
	return c.Send(doc)
}
