package middleware

import (
	"time"

	"eduplatform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// LoggingMiddleware logs every request with latency and status.
func LoggingMiddleware(logger *utils.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		logger.Info("request",
			"ip", c.IP(),
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start).String(),
		)

		return err
	}
}
