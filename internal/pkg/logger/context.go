package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// RequestIDKey is the header carrying the request ID
	RequestIDKey = "X-Request-ID"

	localsKey = "logger"
)

// WithContext stores a request-scoped logger on c
func WithContext(c *fiber.Ctx, l *zap.Logger) {
	c.Locals(localsKey, l)
}

// FromContext retrieves the request-scoped logger, falling back to the
// global logger tagged with the request ID header
func FromContext(c *fiber.Ctx) *zap.Logger {
	if l, ok := c.Locals(localsKey).(*zap.Logger); ok {
		return l
	}

	requestID := c.Get(RequestIDKey)
	if requestID == "" {
		requestID = "unknown"
	}
	return GetLogger().With(zap.String("request_id", requestID))
}

// AccountField tags log entries with the authenticated account
func AccountField(accountID string) zap.Field {
	return zap.String("account_id", accountID)
}
