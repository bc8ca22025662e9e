package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pghive/internal/pkg/logger"
)

// RequestLogger assigns a request ID and logs every request through zap
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(logger.RequestIDKey)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(logger.RequestIDKey, requestID)

		reqLog := log.With(zap.String("request_id", requestID))
		logger.WithContext(c, reqLog)

		err := c.Next()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}

		if err != nil {
			fields = append(fields, zap.Error(err))
			reqLog.Error("HTTP request failed", fields...)
		} else {
			reqLog.Info("HTTP request completed", fields...)
		}

		return err
	}
}
