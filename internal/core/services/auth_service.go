package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pghive/internal/core/domain"
	"pghive/internal/pkg/jwt"
	"pghive/internal/pkg/metrics"
)

// LoginError is a failed login with the attempts left before lockout
type LoginError struct {
	Remaining int
	Err       error
}

func (e *LoginError) Error() string {
	if errors.Is(e.Err, domain.ErrAuthLocked) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (%d attempts remaining)", e.Err, e.Remaining)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

// AuthService handles login, logout and password changes for both roles
type AuthService struct {
	owner      *OwnerService
	tenants    *TenantRegistry
	secret     string
	accessMins int
	log        *zap.Logger
}

// NewAuthService creates a new auth service. With an empty secret no
// access tokens are issued.
func NewAuthService(owner *OwnerService, secret string, accessMins int, log *zap.Logger) *AuthService {
	return &AuthService{
		owner:      owner,
		tenants:    owner.Tenants(),
		secret:     secret,
		accessMins: accessMins,
		log:        log.Named("auth"),
	}
}

// AccountView is the public part of an account
type AccountView struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Account     AccountView `json:"account"`
	AccessToken string      `json:"access_token,omitempty"`
	ExpiresAt   *time.Time  `json:"expires_at,omitempty"`

	seq uint64
}

// Session returns the session of the authenticated account
func (r *AuthResponse) Session() Session {
	return Session{AccountID: r.Account.ID, Role: r.Account.Role, Seq: r.seq}
}

// OwnerLogin authenticates the owner
func (s *AuthService) OwnerLogin(ctx context.Context, email, plain string) (*AuthResponse, error) {
	if err := s.owner.Login(email, plain); err != nil {
		metrics.RecordLogin(string(domain.RoleOwner), false)
		s.log.Warn("owner login failed", zap.Error(err))
		return nil, err
	}
	metrics.RecordLogin(string(domain.RoleOwner), true)

	owner := s.owner.Profile()
	s.log.Info("owner logged in", zap.String("owner_id", owner.ID))
	return s.respond(viewOf(owner.Account, domain.RoleOwner), owner.SessionSeq)
}

// TenantLogin authenticates the tenant registered with email
func (s *AuthService) TenantLogin(ctx context.Context, email, plain string) (*AuthResponse, error) {
	tenant, err := s.tenants.Authenticate(ctx, email, plain)
	if err != nil {
		metrics.RecordLogin(string(domain.RoleTenant), false)
		if tenant != nil {
			return nil, &LoginError{Remaining: tenant.RemainingAttempts(), Err: err}
		}
		return nil, err
	}
	metrics.RecordLogin(string(domain.RoleTenant), true)

	return s.respond(viewOf(tenant.Account, domain.RoleTenant), tenant.SessionSeq)
}

// Logout ends the session's account login
func (s *AuthService) Logout(ctx context.Context, session Session) error {
	if session.IsOwner() {
		s.owner.Logout()
		s.log.Info("owner logged out")
		return nil
	}

	if err := s.tenants.EndSession(ctx, session.AccountID); err != nil {
		return err
	}
	s.log.Info("tenant logged out", zap.String("tenant_id", session.AccountID))
	return nil
}

// ChangePassword replaces the password of the session's account
func (s *AuthService) ChangePassword(ctx context.Context, session Session, current, next string) error {
	var err error
	if session.IsOwner() {
		err = s.owner.ChangePassword(current, next)
	} else {
		err = s.tenants.ChangePassword(ctx, session.AccountID, current, next)
	}
	if err != nil {
		return err
	}

	s.log.Info("password changed", zap.String("account_id", session.AccountID), zap.String("role", string(session.Role)))
	return nil
}

// IsActive reports whether the session is the account's current login.
// Logging out, or logging in again, retires older sessions.
func (s *AuthService) IsActive(ctx context.Context, session Session) (bool, error) {
	if session.IsOwner() {
		owner := s.owner.Profile()
		return owner.ID == session.AccountID && owner.SessionActive(session.Seq), nil
	}

	tenant, err := s.tenants.FindByID(ctx, session.AccountID)
	if errors.Is(err, domain.ErrTenantNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return tenant.SessionActive(session.Seq), nil
}

// Me returns the account behind the session
func (s *AuthService) Me(ctx context.Context, session Session) (*AccountView, error) {
	if session.IsOwner() {
		view := viewOf(s.owner.Profile().Account, domain.RoleOwner)
		return &view, nil
	}

	tenant, err := s.tenants.FindByID(ctx, session.AccountID)
	if err != nil {
		return nil, err
	}
	view := viewOf(tenant.Account, domain.RoleTenant)
	return &view, nil
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.secret)
}

// respond issues an access token when a secret is configured
func (s *AuthService) respond(view AccountView, seq uint64) (*AuthResponse, error) {
	resp := &AuthResponse{Account: view, seq: seq}
	if s.secret == "" {
		return resp, nil
	}

	token, err := jwt.GenerateAccessToken(view.ID, view.Name, string(view.Role), seq, s.secret, s.accessMins)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	expires := jwt.GetExpiryTime(s.accessMins)

	resp.AccessToken = token
	resp.ExpiresAt = &expires
	return resp, nil
}

func viewOf(a domain.Account, role domain.Role) AccountView {
	return AccountView{ID: a.ID, Name: a.Name, Email: a.Email, Role: role}
}
