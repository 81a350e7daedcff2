// Package common defines sentinel errors and small helpers shared by the
// ByteMe client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when a record with the same email is
	// already stored. The users table rejects it atomically on insert.
	ErrDuplicateEmail = errors.New("email already exists")

	// Session-level errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrorUnauthorized     = errors.New("unauthorized")
)
