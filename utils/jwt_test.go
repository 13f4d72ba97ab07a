package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "admin", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestGenerateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "user", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte("other"), nil
	})
	if err == nil {
		t.Error("token signed with a different secret must not verify")
	}
}
