// Package common defines sentinel errors and small helpers shared by the
// session, storage and CLI layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Session errors.
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrAlreadyExists      = errors.New("user already exists")

	// Form validation errors.
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email is invalid")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrNameRequired     = errors.New("name is required")

	// Stored data that cannot be decoded.
	ErrCorruptedData = errors.New("corrupted stored data")
)
