package http

import (
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/application/workorder"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/observability/metrics"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// WebhookSecretHeader cabecera con el secreto compartido del webhook.
const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookHandler recibe eventos de OptimoRoute. No usa Bearer token.
type WebhookHandler struct {
	uc     *workorder.WorkOrderUseCase
	secret string
	log    *logger.Logger
}

// NewWebhookHandler construye el handler. secret vacío deja el webhook abierto.
func NewWebhookHandler(uc *workorder.WorkOrderUseCase, secret string, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, secret: secret, log: log.Component("webhook")}
}

// OptimoRoute godoc
// @Summary      Webhook de finalización de OptimoRoute
// @Description  Marca la orden como completada (la crea si no existe). Responde ok aunque el evento se ignore.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RouteCompletionRequest  true  "order_id, technician_email, status, completed_at"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /optimoroute/webhook [post]
func (h *WebhookHandler) OptimoRoute(c *fiber.Ctx) error {
	if h.secret != "" {
		got := c.Get(WebhookSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			metrics.ObserveWebhook(metrics.ResultBadSecret)
			h.log.Warn().Str("ip", c.IP()).Msg("webhook con secreto inválido")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "secreto de webhook inválido"})
		}
	}

	var in dto.RouteCompletionRequest
	if err := parseWebhookBody(c, &in); err != nil {
		metrics.ObserveWebhook(metrics.ResultDecodeError)
		return invalidBody(c)
	}

	err := h.uc.Complete(c.Context(), in)
	switch {
	case err == nil:
		metrics.ObserveWebhook(metrics.ResultOK)
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.ObserveWebhook(metrics.ResultIgnored)
		h.log.Warn().Str("status", in.Status).Msg("evento sin order_id ignorado")
	default:
		metrics.ObserveWebhook(metrics.ResultStoreError)
		h.log.Error().Err(err).Str("order_id", in.OrderID).Msg("no se pudo registrar la orden")
	}
	return c.JSON(dto.StatusOK)
}

// parseWebhookBody acepta JSON aunque el emisor no envíe Content-Type.
func parseWebhookBody(c *fiber.Ctx, out *dto.RouteCompletionRequest) error {
	if len(c.Request().Header.ContentType()) == 0 {
		return c.App().Config().JSONDecoder(c.Body(), out)
	}
	return c.BodyParser(out)
}
