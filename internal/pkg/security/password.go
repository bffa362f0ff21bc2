// Package security holds the credential primitives: bcrypt password hashing
// and HS256 session tokens.
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor applied to every new hash.
const PasswordCost = bcrypt.DefaultCost

// maxPasswordBytes is the bcrypt input limit. Longer passwords are cut to
// it on both hash and compare, so any length is accepted.
const maxPasswordBytes = 72

// HashPassword returns a salted bcrypt digest of plain.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(plain), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches digest. A malformed digest is
// treated as a mismatch.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), bcryptInput(plain)) == nil
}

func bcryptInput(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
