package domain

import (
	"fmt"

	"pghive/internal/pkg/password"
)

// MaxFailedAttempts is the number of consecutive failed logins after which
// an account refuses to authenticate.
const MaxFailedAttempts = 3

// Role identifies the kind of account behind a session
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleTenant Role = "TENANT"
)

// Account holds the identity and session state shared by owners and tenants.
// Once FailedAttempts reaches MaxFailedAttempts the account stays locked:
// a correct attempt is rejected too, so nothing resets the counter.
// SessionSeq numbers the successful logins; a token is only honoured for
// the session it was issued in.
type Account struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	LoggedIn       bool
	FailedAttempts int
	SessionSeq     uint64
}

// NewAccount creates an account with a hashed password
func NewAccount(id, name, email, plain string) (Account, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}

	return Account{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}, nil
}

// Locked reports whether the account refuses authentication
func (a *Account) Locked() bool {
	return a.FailedAttempts >= MaxFailedAttempts
}

// RemainingAttempts returns how many failed attempts are left before lockout
func (a *Account) RemainingAttempts() int {
	if a.Locked() {
		return 0
	}
	return MaxFailedAttempts - a.FailedAttempts
}

// Authenticate checks the credentials and opens a session on success.
func (a *Account) Authenticate(email, plain string) error {
	if a.Locked() {
		return ErrAuthLocked
	}

	if a.Email == email && password.Verify(plain, a.PasswordHash) {
		a.LoggedIn = true
		a.FailedAttempts = 0
		a.SessionSeq++
		return nil
	}

	a.FailedAttempts++
	return ErrInvalidCredentials
}

// SessionActive reports whether seq names the account's open session
func (a *Account) SessionActive(seq uint64) bool {
	return a.LoggedIn && a.SessionSeq == seq
}

// EndSession logs the account out
func (a *Account) EndSession() {
	a.LoggedIn = false
}

// ChangePassword replaces the password if current matches the stored one.
// There is no strength or reuse policy.
func (a *Account) ChangePassword(current, next string) error {
	if !password.Verify(current, a.PasswordHash) {
		return ErrPasswordMismatch
	}

	hash, err := password.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	a.PasswordHash = hash
	return nil
}
