// Package cryptox implements the salted argon2id password scheme used when
// the dashboard is configured with password_scheme "argon2id".
//
// Encoded form stored in the account collection:
//
//	argon2id$<base64 salt>$<base64 verifier>
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophdash/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	schemePrefix = "argon2id"
	saltSize     = 16
)

var ErrMalformedHash = errors.New("malformed password hash")

// DeriveMasterKey stretches password with salt using argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier returns the value that is stored instead of the derived key.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// HashPassword derives a verifier from password with a fresh random salt
// and returns it in encoded form.
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltSize)
	return encode(salt, MakeVerifier(DeriveMasterKey(password, salt)))
}

// VerifyPassword reports whether password matches an encoded hash produced
// by HashPassword. The comparison is constant-time.
func VerifyPassword(encoded string, password []byte) (bool, error) {
	salt, verifier, err := decode(encoded)
	if err != nil {
		return false, err
	}
	candidate := MakeVerifier(DeriveMasterKey(password, salt))
	return subtle.ConstantTimeCompare(verifier, candidate) == 1, nil
}

// IsHash reports whether s looks like an encoded argon2id hash.
func IsHash(s string) bool {
	return strings.HasPrefix(s, schemePrefix+"$")
}

func encode(salt, verifier []byte) string {
	enc := base64.RawStdEncoding
	return schemePrefix + "$" + enc.EncodeToString(salt) + "$" + enc.EncodeToString(verifier)
}

func decode(s string) (salt, verifier []byte, err error) {
	parts := strings.Split(s, "$")
	if len(parts) != 3 || parts[0] != schemePrefix {
		return nil, nil, ErrMalformedHash
	}
	enc := base64.RawStdEncoding
	if salt, err = enc.DecodeString(parts[1]); err != nil {
		return nil, nil, ErrMalformedHash
	}
	if verifier, err = enc.DecodeString(parts[2]); err != nil {
		return nil, nil, ErrMalformedHash
	}
	return salt, verifier, nil
}
