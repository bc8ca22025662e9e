package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pghive/internal/core/domain"
)

func newAccount(t *testing.T) domain.Account {
	t.Helper()

	acc, err := domain.NewAccount("O001", "PG Owner", "owner@pg.com", "admin123")
	require.NoError(t, err)
	return acc
}

func TestAccount_Authenticate(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: "owner@pg.com", password: "admin123"},
		{name: "wrong password", email: "owner@pg.com", password: "nope", wantErr: domain.ErrInvalidCredentials},
		{name: "wrong email", email: "other@pg.com", password: "admin123", wantErr: domain.ErrInvalidCredentials},
		{name: "email is case sensitive", email: "Owner@pg.com", password: "admin123", wantErr: domain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := newAccount(t)

			err := acc.Authenticate(tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, acc.LoggedIn)
				assert.Equal(t, 1, acc.FailedAttempts)
				assert.Equal(t, 2, acc.RemainingAttempts())
				return
			}
			require.NoError(t, err)
			assert.True(t, acc.LoggedIn)
			assert.Zero(t, acc.FailedAttempts)
		})
	}
}

func TestAccount_SuccessResetsCounter(t *testing.T) {
	acc := newAccount(t)

	assert.ErrorIs(t, acc.Authenticate("owner@pg.com", "x"), domain.ErrInvalidCredentials)
	assert.ErrorIs(t, acc.Authenticate("owner@pg.com", "y"), domain.ErrInvalidCredentials)
	assert.Equal(t, 1, acc.RemainingAttempts())

	require.NoError(t, acc.Authenticate("owner@pg.com", "admin123"))
	assert.Zero(t, acc.FailedAttempts)
	assert.Equal(t, domain.MaxFailedAttempts, acc.RemainingAttempts())
}

func TestAccount_LockoutIsPermanent(t *testing.T) {
	acc := newAccount(t)

	for i := 0; i < domain.MaxFailedAttempts; i++ {
		assert.ErrorIs(t, acc.Authenticate("owner@pg.com", "bad"), domain.ErrInvalidCredentials)
	}
	assert.True(t, acc.Locked())
	assert.Zero(t, acc.RemainingAttempts())

	// once locked, even correct credentials are refused and nothing changes
	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, acc.Authenticate("owner@pg.com", "admin123"), domain.ErrAuthLocked)
		assert.False(t, acc.LoggedIn)
		assert.Equal(t, domain.MaxFailedAttempts, acc.FailedAttempts)
	}
}

func TestAccount_EndSession(t *testing.T) {
	acc := newAccount(t)
	require.NoError(t, acc.Authenticate("owner@pg.com", "admin123"))

	acc.EndSession()
	assert.False(t, acc.LoggedIn)

	acc.EndSession()
	assert.False(t, acc.LoggedIn)
}

func TestAccount_ChangePassword(t *testing.T) {
	acc := newAccount(t)

	assert.ErrorIs(t, acc.ChangePassword("wrong", "newpass"), domain.ErrPasswordMismatch)
	require.NoError(t, acc.Authenticate("owner@pg.com", "admin123"))

	require.NoError(t, acc.ChangePassword("admin123", "newpass"))
	assert.ErrorIs(t, acc.Authenticate("owner@pg.com", "admin123"), domain.ErrInvalidCredentials)
	require.NoError(t, acc.Authenticate("owner@pg.com", "newpass"))

	// no reuse policy
	require.NoError(t, acc.ChangePassword("newpass", "newpass"))
}

func TestAccount_SessionSeq(t *testing.T) {
	acc := newAccount(t)
	assert.False(t, acc.SessionActive(0))

	require.NoError(t, acc.Authenticate("owner@pg.com", "admin123"))
	first := acc.SessionSeq
	assert.True(t, acc.SessionActive(first))

	acc.EndSession()
	assert.False(t, acc.SessionActive(first))

	require.NoError(t, acc.Authenticate("owner@pg.com", "admin123"))
	assert.Equal(t, first+1, acc.SessionSeq)
	assert.False(t, acc.SessionActive(first))
	assert.True(t, acc.SessionActive(acc.SessionSeq))

	assert.ErrorIs(t, acc.Authenticate("owner@pg.com", "nope"), domain.ErrInvalidCredentials)
	assert.Equal(t, first+1, acc.SessionSeq)
}
