package auth

import (
	"testing"
	"time"

	"github.com/vedavayu/clinic-backend/internal/domain"
)

func testIdentity() Identity {
	return Identity{
		UserID:    "u-1",
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     "asha@example.com",
		Role:      domain.RoleAdmin,
		Phone:     "9999999999",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, exp, err := tm.Issue(testIdentity(), time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if until := time.Until(exp); until < 59*time.Minute || until > time.Hour {
		t.Fatalf("unexpected expiry %v", exp)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.User != testIdentity() {
		t.Fatalf("identity mismatch: %+v", claims.User)
	}
	if claims.Subject != "u-1" {
		t.Fatalf("expected subject u-1, got %q", claims.Subject)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, _, err := tm.Issue(testIdentity(), -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := tm.Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a").Issue(testIdentity(), time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewTokenManager("secret-b").Parse(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret")
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tm.Parse(token); err == nil {
			t.Fatalf("expected error for token %q", token)
		}
	}
}
