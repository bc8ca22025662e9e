package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pghive/internal/pkg/jwt"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := jwt.GenerateAccessToken("T001", "John Doe", "TENANT", 3, "secret", 15)
	require.NoError(t, err)

	claims, err := jwt.ValidateAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "T001", claims.AccountID)
	assert.Equal(t, "John Doe", claims.Name)
	assert.Equal(t, "TENANT", claims.Role)
	assert.EqualValues(t, 3, claims.Session)
	assert.Equal(t, "T001", claims.Subject)
}

func TestValidateAccessToken_Rejects(t *testing.T) {
	good, err := jwt.GenerateAccessToken("O001", "PG Owner", "OWNER", 1, "secret", 15)
	require.NoError(t, err)

	expired, err := jwt.GenerateAccessToken("O001", "PG Owner", "OWNER", 1, "secret", -5)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{name: "wrong secret", token: good, secret: "other", wantErr: jwt.ErrTokenInvalid},
		{name: "garbage", token: "not-a-token", secret: "secret", wantErr: jwt.ErrTokenInvalid},
		{name: "expired", token: expired, secret: "secret", wantErr: jwt.ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jwt.ValidateAccessToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
