package services

import (
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/gophdash/internal/cryptox"
)

// PasswordScheme decides what is stored in Account.Password and how a login
// attempt is checked against it.
type PasswordScheme interface {
	Encode(password string) string
	Matches(stored, password string) (bool, error)
}

// PlainScheme stores passwords as entered. It exists for compatibility with
// data written by earlier prototypes and must not be used for real accounts.
type PlainScheme struct{}

func (PlainScheme) Encode(password string) string { return password }

func (PlainScheme) Matches(stored, password string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1, nil
}

// Argon2Scheme stores salted argon2id verifiers. Accounts created under
// PlainScheme still log in: a stored value that is not a hash is compared
// as plaintext.
type Argon2Scheme struct{}

func (Argon2Scheme) Encode(password string) string {
	return cryptox.HashPassword([]byte(password))
}

func (Argon2Scheme) Matches(stored, password string) (bool, error) {
	if !cryptox.IsHash(stored) {
		return PlainScheme{}.Matches(stored, password)
	}
	return cryptox.VerifyPassword(stored, []byte(password))
}

// PasswordSchemeByName maps a config value to a scheme.
func PasswordSchemeByName(name string) (PasswordScheme, error) {
	switch name {
	case "", "plain":
		return PlainScheme{}, nil
	case "argon2id":
		return Argon2Scheme{}, nil
	}
	return nil, fmt.Errorf("unknown password scheme %q", name)
}
