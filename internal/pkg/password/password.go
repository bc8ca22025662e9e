package password

import (
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
)

var cost atomic.Int64

func init() {
	cost.Store(DefaultCost)
}

// SetCost changes the bcrypt cost used by Hash.
// Values outside bcrypt's accepted range fall back to DefaultCost.
func SetCost(c int) {
	if c < bcrypt.MinCost || c > bcrypt.MaxCost {
		c = DefaultCost
	}
	cost.Store(int64(c))
}

// Cost returns the bcrypt cost currently used by Hash
func Cost() int {
	return int(cost.Load())
}

// Hash hashes a password using bcrypt
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost())
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
