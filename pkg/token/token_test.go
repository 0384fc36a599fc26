package token

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestIssueAndResolve(t *testing.T) {
	svc := NewService("test-secret", 30*time.Minute)
	userID := uuid.New()

	tokenString, err := svc.Issue("alice", userID, "user")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if tokenString == "" {
		t.Fatal("Expected non-empty token")
	}

	identity, err := svc.Resolve(tokenString)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if identity.Username != "alice" {
		t.Errorf("Expected username 'alice', got '%s'", identity.Username)
	}
	if identity.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, identity.UserID)
	}
	if identity.Role != "user" {
		t.Errorf("Expected role 'user', got '%s'", identity.Role)
	}
}

func TestResolveExpiredToken(t *testing.T) {
	svc := NewService("test-secret", -1*time.Minute)

	tokenString, err := svc.Issue("alice", uuid.New(), "user")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := svc.Resolve(tokenString); err == nil {
		t.Fatal("Expected error for expired token")
	} else if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestResolveWrongSecret(t *testing.T) {
	issuer := NewService("secret-one", 30*time.Minute)
	verifier := NewService("secret-two", 30*time.Minute)

	tokenString, err := issuer.Issue("alice", uuid.New(), "user")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Resolve(tokenString); err == nil {
		t.Fatal("Expected error for token signed with another secret")
	}
}

func TestResolveMalformedToken(t *testing.T) {
	svc := NewService("test-secret", 30*time.Minute)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Resolve(tokenString); err == nil {
			t.Errorf("Expected error for malformed token %q", tokenString)
		}
	}
}
