package security

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	tokens := NewTokenAuth([]byte("test-secret"), time.Hour)

	tokenString, err := tokens.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tok, err := jwtauth.VerifyToken(tokens.JWTAuth(), tokenString)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if got := tok.Subject(); got != "user-42" {
		t.Errorf("subject = %q, want %q", got, "user-42")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	tokens := NewTokenAuth([]byte("test-secret"), -time.Minute)

	tokenString, err := tokens.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := jwtauth.VerifyToken(tokens.JWTAuth(), tokenString); err == nil {
		t.Error("expected expired token to fail verification")
	}
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	tokens := NewTokenAuth([]byte("test-secret"), time.Hour)
	other := NewTokenAuth([]byte("other-secret"), time.Hour)

	tokenString, err := tokens.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := jwtauth.VerifyToken(other.JWTAuth(), tokenString); err == nil {
		t.Error("expected token signed with another key to fail verification")
	}
}

func TestGetSubjectFromClaims(t *testing.T) {
	if _, err := GetSubjectFromClaims(map[string]interface{}{}); err == nil {
		t.Error("expected missing sub claim to error")
	}
	if _, err := GetSubjectFromClaims(map[string]interface{}{"sub": 7}); err == nil {
		t.Error("expected non-string sub claim to error")
	}
	sub, err := GetSubjectFromClaims(map[string]interface{}{"sub": "user-42"})
	if err != nil {
		t.Fatalf("GetSubjectFromClaims: %v", err)
	}
	if sub != "user-42" {
		t.Errorf("sub = %q, want %q", sub, "user-42")
	}
}
