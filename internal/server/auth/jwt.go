// Package auth implements the credential and token primitives of the
// server: bcrypt password digests and HS256-signed identity tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkarpenko/tasktrack/internal/common"
)

// Claims carries the standard registered claims plus the owning account id.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

// GenerateToken issues a signed token for accountID, valid for
// validityDuration from now. The secret is the process-wide signing key
// loaded once at startup.
func GenerateToken(accountID string, secret []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		AccountID: accountID,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetAccountIDFromToken verifies tokenString against secret and returns the
// embedded account id. Failures map onto the sentinel taxonomy:
// common.ErrTokenMalformed, common.ErrTokenBadSignature,
// common.ErrTokenExpired. Callers must treat all three identically.
func GetAccountIDFromToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrTokenBadSignature
		default:
			return "", common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return "", common.ErrTokenMalformed
	}

	if claims.AccountID == "" {
		return "", common.ErrTokenMalformed
	}

	return claims.AccountID, nil
}
