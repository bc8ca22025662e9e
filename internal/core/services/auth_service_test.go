package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pghive/internal/core/domain"
	"pghive/internal/core/services"
)

func newAuthService(t *testing.T) (*services.AuthService, *services.OwnerService) {
	t.Helper()

	owner := newOwnerService(t, services.BillingFlat)
	return services.NewAuthService(owner, "test-secret", 15, zap.NewNop()), owner
}

func TestOwnerLogin(t *testing.T) {
	ctx := context.Background()
	auth, owner := newAuthService(t)

	_, err := auth.OwnerLogin(ctx, "owner@pg.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	var loginErr *services.LoginError
	require.True(t, errors.As(err, &loginErr))
	assert.Equal(t, 2, loginErr.Remaining)
	assert.Contains(t, err.Error(), "2 attempts remaining")

	resp, err := auth.OwnerLogin(ctx, "owner@pg.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "O001", resp.Account.ID)
	assert.Equal(t, domain.RoleOwner, resp.Account.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.True(t, owner.LoggedIn())

	claims, err := auth.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "O001", claims.AccountID)
	assert.Equal(t, "OWNER", claims.Role)
}

func TestOwnerLogin_Lockout(t *testing.T) {
	ctx := context.Background()
	auth, owner := newAuthService(t)

	for i := 0; i < domain.MaxFailedAttempts; i++ {
		_, err := auth.OwnerLogin(ctx, "owner@pg.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}

	_, err := auth.OwnerLogin(ctx, "owner@pg.com", "admin123")
	assert.ErrorIs(t, err, domain.ErrAuthLocked)
	assert.False(t, owner.LoggedIn())
}

func TestTenantLogin(t *testing.T) {
	ctx := context.Background()
	auth, owner := newAuthService(t)
	addTenant(t, owner, "T001", "john@example.com", "")

	_, err := auth.TenantLogin(ctx, "nobody@example.com", "secret")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)

	_, err = auth.TenantLogin(ctx, "john@example.com", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	resp, err := auth.TenantLogin(ctx, "john@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTenant, resp.Account.Role)
	assert.Zero(t, requireTenant(t, owner, "T001").FailedAttempts)

	active, err := auth.IsActive(ctx, resp.Session())
	require.NoError(t, err)
	assert.True(t, active)

	me, err := auth.Me(ctx, resp.Session())
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", me.Email)
}

func TestLogoutEndsSession(t *testing.T) {
	ctx := context.Background()
	auth, owner := newAuthService(t)
	addTenant(t, owner, "T001", "john@example.com", "")

	ownerResp, err := auth.OwnerLogin(ctx, "owner@pg.com", "admin123")
	require.NoError(t, err)
	tenantResp, err := auth.TenantLogin(ctx, "john@example.com", "secret")
	require.NoError(t, err)

	for _, session := range []services.Session{ownerResp.Session(), tenantResp.Session()} {
		require.NoError(t, auth.Logout(ctx, session))

		active, err := auth.IsActive(ctx, session)
		require.NoError(t, err)
		assert.False(t, active, session.AccountID)
	}

	active, err := auth.IsActive(ctx, services.Session{AccountID: "T404", Role: domain.RoleTenant})
	require.NoError(t, err)
	assert.False(t, active)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	auth, owner := newAuthService(t)
	addTenant(t, owner, "T001", "john@example.com", "")

	ownerSession := services.Session{AccountID: "O001", Role: domain.RoleOwner}
	tenantSession := services.Session{AccountID: "T001", Role: domain.RoleTenant}

	assert.ErrorIs(t, auth.ChangePassword(ctx, ownerSession, "wrong", "x"), domain.ErrPasswordMismatch)
	require.NoError(t, auth.ChangePassword(ctx, ownerSession, "admin123", "admin456"))
	_, err := auth.OwnerLogin(ctx, "owner@pg.com", "admin456")
	require.NoError(t, err)

	assert.ErrorIs(t, auth.ChangePassword(ctx, tenantSession, "wrong", "x"), domain.ErrPasswordMismatch)
	require.NoError(t, auth.ChangePassword(ctx, tenantSession, "secret", "better"))
	_, err = auth.TenantLogin(ctx, "john@example.com", "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = auth.TenantLogin(ctx, "john@example.com", "better")
	require.NoError(t, err)
}

func TestAuthWithoutSecretIssuesNoToken(t *testing.T) {
	owner := newOwnerService(t, services.BillingFlat)
	auth := services.NewAuthService(owner, "", 15, zap.NewNop())

	resp, err := auth.OwnerLogin(context.Background(), "owner@pg.com", "admin123")
	require.NoError(t, err)
	assert.Empty(t, resp.AccessToken)
	assert.Nil(t, resp.ExpiresAt)
}

func TestLoginAgainRetiresOldSession(t *testing.T) {
	ctx := context.Background()
	auth, owner := newAuthService(t)
	addTenant(t, owner, "T001", "john@example.com", "")

	logins := []func() (*services.AuthResponse, error){
		func() (*services.AuthResponse, error) { return auth.OwnerLogin(ctx, "owner@pg.com", "admin123") },
		func() (*services.AuthResponse, error) { return auth.TenantLogin(ctx, "john@example.com", "secret") },
	}

	for _, login := range logins {
		first, err := login()
		require.NoError(t, err)
		require.NoError(t, auth.Logout(ctx, first.Session()))

		second, err := login()
		require.NoError(t, err)

		active, err := auth.IsActive(ctx, first.Session())
		require.NoError(t, err)
		assert.False(t, active, first.Account.ID)

		active, err = auth.IsActive(ctx, second.Session())
		require.NoError(t, err)
		assert.True(t, active, second.Account.ID)
	}
}
