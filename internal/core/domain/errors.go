package domain

import "errors"

// Common domain errors
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateEntry  = errors.New("duplicate entry")
)

// Identity errors
var (
	ErrAuthLocked         = errors.New("account locked: too many failed attempts")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("current password incorrect")
)

// Room errors
var (
	ErrInvalidRoom     = errors.New("invalid room")
	ErrRoomNotFound    = errors.New("room not found")
	ErrAlreadyOccupied = errors.New("room already occupied")
)

// Tenant and ledger errors
var (
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrPaymentNotFound = errors.New("payment not found")
)
