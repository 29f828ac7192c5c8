package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// TokenAuth mints and verifies HS256 bearer tokens. The signing key and
// expiry are fixed at construction; build one from config in main and pass
// it down.
type TokenAuth struct {
	auth *jwtauth.JWTAuth
	exp  time.Duration
}

func NewTokenAuth(secret []byte, exp time.Duration) *TokenAuth {
	return &TokenAuth{
		auth: jwtauth.New("HS256", secret, nil),
		exp:  exp,
	}
}

// JWTAuth exposes the underlying verifier for router middleware.
func (t *TokenAuth) JWTAuth() *jwtauth.JWTAuth {
	return t.auth
}

// GenerateToken issues a signed token with the user id as subject.
func (t *TokenAuth) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(t.exp).Unix(),
		"iat": now.Unix(),
	}
	_, tokenString, err := t.auth.Encode(claims)
	return tokenString, err
}

// GetSubjectFromClaims extracts the user id subject from verified claims.
func GetSubjectFromClaims(claims map[string]interface{}) (string, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("sub claim is missing or not a string")
	}
	return sub, nil
}
