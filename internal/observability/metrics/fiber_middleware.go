package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// FiberMiddleware instrumenta cada petición con la plantilla de ruta como etiqueta.
// Los valores de etiqueta se copian: Fiber los devuelve apuntando al buffer de la
// petición, que se reutiliza, y prometheus los conserva.
func FiberMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := utils.CopyString(c.Route().Path)
		if path == "" || (path == "/" && c.Path() != "/") {
			path = "unmatched"
		}
		ObserveHTTPRequest(utils.CopyString(c.Method()), path, strconv.Itoa(status), time.Since(start))
		return err
	}
}
