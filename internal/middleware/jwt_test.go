package middleware

import (
	"testing"
	"time"

	"health-monitoring-backend/internal/config"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	cfg := &config.JWTConfig{Secret: "super-secret", TTL: time.Hour}

	tok, err := GenerateToken(42, "alice", "a@x.com", cfg)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ValidateToken(tok, cfg)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.ID != 42 || claims.Username != "alice" || claims.Email != "a@x.com" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	cfg := &config.JWTConfig{Secret: "secret", TTL: -1 * time.Second}

	tok, err := GenerateToken(1, "u1", "u1@x.com", cfg)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ValidateToken(tok, cfg); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(2, "u2", "u2@x.com", &config.JWTConfig{Secret: "right-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ValidateToken(tok, &config.JWTConfig{Secret: "wrong-secret", TTL: time.Hour}); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ValidateToken("not.a.jwt", &config.JWTConfig{Secret: "k", TTL: time.Hour}); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
