package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/foodhub/internal/app/system/token"
)

func TestIssueAndVerify(t *testing.T) {
	iss := token.New("test-secret-0123456789", 0)

	raw, err := iss.Issue("64f000000000000000000001")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := iss.Verify(raw)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if userID != "64f000000000000000000001" {
		t.Errorf("userID: got %q, want %q", userID, "64f000000000000000000001")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	iss := token.New("secret-a", 0)
	other := token.New("secret-b", 0)

	raw, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := other.Verify(raw); !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	iss := token.New("test-secret", 0)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := iss.Verify(raw); !errors.Is(err, token.ErrInvalidToken) {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestVerify_Expired(t *testing.T) {
	iss := token.New("test-secret", time.Millisecond)
	raw, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := iss.Verify(raw); !errors.Is(err, token.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestIssue_NoExpiryByDefault(t *testing.T) {
	iss := token.New("test-secret", 0)
	raw, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Tokens without an expiry stay valid indefinitely.
	if _, err := iss.Verify(raw); err != nil {
		t.Errorf("expected non-expiring token to verify, got %v", err)
	}
}
