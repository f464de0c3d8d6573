package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adwaithaSV/bookmark-backend/internal/auth"
	"github.com/adwaithaSV/bookmark-backend/internal/store"
	"github.com/adwaithaSV/bookmark-backend/internal/testutil"
)

func newMiddlewareEnv(t *testing.T) (*store.UserStore, *auth.TokenService, http.Handler) {
	t.Helper()
	db := testutil.NewTestDB(t)
	us := store.NewUserStore(db)
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	mw := auth.NewBearerTokenMiddleware(tokens, us)

	// Echoes the authenticated username so tests can see what reached the
	// protected handler.
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := auth.UserFromContext(r.Context())
		if user == nil {
			t.Error("handler reached without user in context")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(user.Username))
	}))

	return us, tokens, handler
}

func TestBearerMiddleware_ValidToken(t *testing.T) {
	us, tokens, handler := newMiddlewareEnv(t)

	if _, err := us.Create(context.Background(), "alice", "hash"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if rec.Body.String() != "alice" {
		t.Errorf("handler saw user %q, want %q", rec.Body.String(), "alice")
	}
}

func TestBearerMiddleware_RejectsBadHeaders(t *testing.T) {
	_, _, handler := newMiddlewareEnv(t)

	headers := []string{
		"",
		"Bearer ",
		"Bearer not-a-jwt",
		"Basic dXNlcjpwYXNz",
	}
	for _, h := range headers {
		req := httptest.NewRequest("GET", "/", nil)
		if h != "" {
			req.Header.Set("Authorization", h)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want %d", h, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestBearerMiddleware_RejectsExpiredToken(t *testing.T) {
	us, _, handler := newMiddlewareEnv(t)

	if _, err := us.Create(context.Background(), "alice", "hash"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	expired := auth.NewTokenService([]byte("test-secret"), -time.Minute)
	token, err := expired.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

// A well-signed token naming a user that no longer exists is a server-side
// inconsistency, not a credential problem.
func TestBearerMiddleware_ValidTokenUnknownUser(t *testing.T) {
	_, tokens, handler := newMiddlewareEnv(t)

	token, err := tokens.Issue("ghost")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
