package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/foodhub/internal/app/system/auth"
	"github.com/dalemusser/foodhub/internal/app/system/token"
)

// okHandler records whether it ran and what user ID it saw.
type okHandler struct {
	called bool
	userID string
}

func (h *okHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.userID, _ = auth.CurrentUserID(r)
	w.WriteHeader(http.StatusOK)
}

func TestRequireToken_MissingHeader(t *testing.T) {
	iss := token.New("gate-secret", 0)
	inner := &okHandler{}
	gate := auth.RequireToken(iss)(inner)

	req := httptest.NewRequest("GET", "/protected", nil)
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if inner.called {
		t.Error("downstream handler must not run without a token")
	}
}

func TestRequireToken_InvalidToken(t *testing.T) {
	iss := token.New("gate-secret", 0)
	other := token.New("different-secret", 0)

	foreign, err := other.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	inner := &okHandler{}
	gate := auth.RequireToken(iss)(inner)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(auth.Header, foreign)
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if inner.called {
		t.Error("downstream handler must not run with a bad token")
	}
}

func TestRequireToken_ValidToken(t *testing.T) {
	iss := token.New("gate-secret", 0)

	raw, err := iss.Issue("64f000000000000000000002")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	inner := &okHandler{}
	gate := auth.RequireToken(iss)(inner)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(auth.Header, raw)
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !inner.called {
		t.Fatal("expected downstream handler to run")
	}
	if inner.userID != "64f000000000000000000002" {
		t.Errorf("injected user ID: got %q, want %q", inner.userID, "64f000000000000000000002")
	}
}

func TestCurrentUserID_Absent(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := auth.CurrentUserID(req); ok {
		t.Error("expected no user ID on a bare request")
	}
}

func TestWithTestUserID(t *testing.T) {
	req := auth.WithTestUserID(httptest.NewRequest("GET", "/", nil), "abc123")
	id, ok := auth.CurrentUserID(req)
	if !ok || id != "abc123" {
		t.Errorf("CurrentUserID: got (%q, %v), want (%q, true)", id, ok, "abc123")
	}
}
