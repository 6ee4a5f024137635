package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt truncates input beyond 72 bytes, so longer passwords are rejected
// rather than silently weakened.
const maxPasswordLength = 72

// HashPassword returns a salted bcrypt digest of password. The work factor
// is fixed at bcrypt's default cost so verification stays in the tens of
// milliseconds on commodity hardware.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordLength {
		return "", fmt.Errorf("password exceeds %d bytes", maxPasswordLength)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// CheckPassword reports whether password matches digest. A malformed digest
// yields false, never an error. bcrypt's comparison does not leak where a
// mismatch occurs.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
