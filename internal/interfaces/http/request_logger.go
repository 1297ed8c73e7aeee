package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/veterinaria-api/pkg/logger"
)

// RequestLogger registra cada petición con zerolog: método, ruta, status,
// latencia y el request id que genera el middleware requestid.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		ev := log.Info()
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request")
		return err
	}
}
