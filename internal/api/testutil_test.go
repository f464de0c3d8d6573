package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/adwaithaSV/bookmark-backend/internal/api"
	"github.com/adwaithaSV/bookmark-backend/internal/auth"
	"github.com/adwaithaSV/bookmark-backend/internal/store"
	"github.com/adwaithaSV/bookmark-backend/internal/testutil"
)

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router    http.Handler
	Users     *store.UserStore
	Bookmarks *store.BookmarkStore
	Tokens    *auth.TokenService
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full router with real stores.
func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithLimit(t, 0)
}

// newTestEnvWithLimit is newTestEnv with a per-user bookmark cap.
func newTestEnvWithLimit(t *testing.T, maxPerUser int) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	us := store.NewUserStore(db)
	bs := store.NewBookmarkStore(db, maxPerUser)
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	log := zap.NewNop()

	router := api.NewRouter(api.Deps{
		AuthHandlers:  auth.NewHandlers(us, tokens, log),
		BearerAuth:    auth.NewBearerTokenMiddleware(tokens, us),
		BookmarkStore: bs,
		DB:            db,
		Log:           log,
	})

	return &testEnv{Router: router, Users: us, Bookmarks: bs, Tokens: tokens}
}

// seedUser creates a user directly in the store and returns it with a valid
// bearer token.
func seedUser(t *testing.T, env *testEnv, username string) (*store.User, string) {
	t.Helper()
	hash, err := auth.HashPassword("pw-" + username)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := env.Users.Create(context.Background(), username, hash)
	if err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	token, err := env.Tokens.Issue(username)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return u, token
}

// doJSON performs a request against the test router. An empty token means no
// Authorization header.
func doJSON(t *testing.T, env *testEnv, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}
