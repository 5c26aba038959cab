package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenClaims carries the standard registered claims plus the account
// identifier the token was issued for.
type TokenClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

// GenerateToken mints an HS256-signed bearer token bound to accountID that
// expires ttl from now.
func GenerateToken(accountID string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		AccountID: accountID,
	})

	return token.SignedString(secret)
}

// ParseToken validates signature and expiry and returns the embedded account
// identifier. Any failure (bad signature, malformed payload, expired) is
// reported as ErrInvalidToken.
func ParseToken(tokenString string, secret []byte) (string, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid || claims.AccountID == "" {
		return "", ErrInvalidToken
	}

	return claims.AccountID, nil
}
