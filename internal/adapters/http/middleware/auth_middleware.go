package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pghive/internal/core/domain"
	"pghive/internal/core/services"
	"pghive/internal/pkg/jwt"
	"pghive/internal/pkg/logger"
	"pghive/internal/pkg/response"
)

const sessionKey = "session"

// AuthMiddleware accepts a valid access token whose account is still logged in
func AuthMiddleware(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Try to get token from cookie first
		accessToken := c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := auth.ValidateAccessToken(accessToken)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Tokens from ended sessions are rejected
		session := services.Session{AccountID: claims.AccountID, Role: domain.Role(claims.Role), Seq: claims.Session}
		active, err := auth.IsActive(c.UserContext(), session)
		if err != nil {
			return response.InternalServerError(c, "Failed to check session")
		}
		if !active {
			return response.Unauthorized(c, "Session has ended, please login again")
		}

		// 6. Set session in context
		c.Locals(sessionKey, session)
		logger.WithContext(c, logger.FromContext(c).With(
			logger.AccountField(session.AccountID),
		))

		return c.Next()
	}
}

// GetSession returns the session set by AuthMiddleware
func GetSession(c *fiber.Ctx) (services.Session, bool) {
	session, ok := c.Locals(sessionKey).(services.Session)
	return session, ok
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := GetSession(c)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		// Check if the session's role is in allowed roles
		for _, allowedRole := range allowedRoles {
			if session.Role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// OwnerOnly middleware allows only the OWNER role
func OwnerOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleOwner)
}

// TenantOnly middleware allows only the TENANT role
func TenantOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleTenant)
}
