package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"pghive/internal/adapters/http/middleware"
	"pghive/internal/config"
	"pghive/internal/core/domain"
	"pghive/internal/core/services"
	"pghive/internal/pkg/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest represents change password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// OwnerLogin handles owner login
// @Summary Owner login
// @Description Authenticate the building owner and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 423 {object} response.Response
// @Router /auth/owner/login [post]
func (h *AuthHandler) OwnerLogin(c *fiber.Ctx) error {
	return h.login(c, h.authService.OwnerLogin)
}

// TenantLogin handles tenant login
// @Summary Tenant login
// @Description Authenticate a tenant by email and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 423 {object} response.Response
// @Router /auth/tenant/login [post]
func (h *AuthHandler) TenantLogin(c *fiber.Ctx) error {
	return h.login(c, h.authService.TenantLogin)
}

type loginFunc func(ctx context.Context, email, password string) (*services.AuthResponse, error)

func (h *AuthHandler) login(c *fiber.Ctx, fn loginFunc) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	result, err := fn(c.UserContext(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		// unknown tenants look like bad credentials
		if errors.Is(err, domain.ErrTenantNotFound) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return handleError(c, err)
	}

	h.setAuthCookie(c, result.AccessToken)

	return response.Success(c, "Login successful", result)
}

// Logout handles logout
// @Summary Logout
// @Description End the current session; outstanding tokens stop working
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.authService.Logout(c.UserContext(), session); err != nil {
		return handleError(c, err)
	}

	h.clearAuthCookie(c)

	return response.Success(c, "Logged out successfully", nil)
}

// ChangePassword handles password change for the current account
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasswordRequest true "Passwords"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.NewPassword == "" {
		return response.BadRequest(c, "New password is required")
	}

	if err := h.authService.ChangePassword(c.UserContext(), session, req.CurrentPassword, req.NewPassword); err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Password changed successfully", nil)
}

// Me returns the current account
// @Summary Get current account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	account, err := h.authService.Me(c.UserContext(), session)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Account retrieved successfully", fiber.Map{
		"account": account,
	})
}

// setAuthCookie sets the access token cookie
func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, accessToken string) {
	if accessToken == "" {
		return
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.AccessTokenMins * 60, // Convert minutes to seconds
		Secure:   h.cfg.IsProd(),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearAuthCookie clears the access token cookie
func (h *AuthHandler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.IsProd(),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
