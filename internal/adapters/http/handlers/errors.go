package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pghive/internal/core/domain"
	"pghive/internal/core/services"
	"pghive/internal/pkg/logger"
	"pghive/internal/pkg/response"
)

// dateLayout is the request date format
const dateLayout = "2006-01-02"

// handleError maps domain errors to HTTP responses
func handleError(c *fiber.Ctx, err error) error {
	var loginErr *services.LoginError

	switch {
	case errors.Is(err, domain.ErrAuthLocked):
		return response.Locked(c, "Account locked after too many failed attempts")
	case errors.As(err, &loginErr):
		return response.Unauthorized(c, loginErr.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, domain.ErrPasswordMismatch):
		return response.Unauthorized(c, "Current password is incorrect")
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrTenantNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrAlreadyOccupied),
		errors.Is(err, domain.ErrDuplicateEntry):
		return response.Conflict(c, err.Error())
	case errors.Is(err, domain.ErrInvalidRoom),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidArgument):
		return response.BadRequest(c, err.Error())
	default:
		logger.FromContext(c).Error("request failed", zap.Error(err))
		return response.InternalServerError(c, "Internal server error")
	}
}

// parseDate parses an optional yyyy-mm-dd date
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
