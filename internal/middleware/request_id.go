package middleware

import (
	"time"

	"balanceai/internal/logger"
	"balanceai/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader carries the correlation id on every response.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the fiber.Ctx locals key for the correlation id.
	RequestIDKey = "requestID"
)

// RequestLogger assigns each request a ULID correlation id and logs the
// request outcome with latency. Incoming ids are honored so callers can
// trace across services.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = util.NewULID()
		}
		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDHeader, requestID)

		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		logger.Get().Info("Request handled",
			zap.String("requestID", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", latency),
		)

		return err
	}
}
