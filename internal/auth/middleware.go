package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/adwaithaSV/bookmark-backend/internal/store"
)

type contextKey string

// UserContextKey is the request-context key under which the authenticated
// *store.User is stored.
const UserContextKey contextKey = "user"

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx context.Context) *store.User {
	u, _ := ctx.Value(UserContextKey).(*store.User)
	return u
}

// BearerTokenMiddleware authenticates API requests via a signed bearer token
// and resolves it to a user record.
type BearerTokenMiddleware struct {
	tokens *TokenService
	users  store.UserStoreIface
}

func NewBearerTokenMiddleware(ts *TokenService, us store.UserStoreIface) *BearerTokenMiddleware {
	return &BearerTokenMiddleware{tokens: ts, users: us}
}

// Authenticate extracts and verifies the Authorization Bearer token, loads
// the user it names, and injects the user into the request context.
// Missing, malformed, or expired tokens get 401. A valid token whose user no
// longer exists is a server-side inconsistency and gets 500, not 401.
func (m *BearerTokenMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeUnauthorized(w)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			writeUnauthorized(w)
			return
		}

		username, err := m.tokens.Verify(tokenString)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		user, err := m.users.GetByUsername(r.Context(), username)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "internal error")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeMessage(w, http.StatusUnauthorized, "unauthorized")
}
