package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	config := JWTConfig{Secret: "test-secret", ExpiryHours: 1}
	userID := uuid.New()

	token, err := GenerateToken(userID, "admin", config)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token, config)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %s, want admin", claims.Role)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "customer", JWTConfig{Secret: "secret-a", ExpiryHours: 1})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(token, JWTConfig{Secret: "secret-b", ExpiryHours: 1}); err == nil {
		t.Fatal("token signed with another secret must not parse")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-token", JWTConfig{Secret: "s", ExpiryHours: 1}); err == nil {
		t.Fatal("garbage must not parse")
	}
}
