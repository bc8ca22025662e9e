package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pghive/internal/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	password.SetCost(bcrypt.MinCost)

	hash, err := password.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, password.Verify("admin123", hash))
	assert.False(t, password.Verify("admin124", hash))
	assert.False(t, password.Verify("", hash))
}

func TestSetCost_OutOfRangeFallsBack(t *testing.T) {
	password.SetCost(bcrypt.MaxCost + 1)
	assert.Equal(t, password.DefaultCost, password.Cost())

	password.SetCost(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, password.Cost())
}
