package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/adwaithaSV/bookmark-backend/internal/auth"
	"github.com/adwaithaSV/bookmark-backend/internal/store"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	AuthHandlers  *auth.Handlers
	BearerAuth    *auth.BearerTokenMiddleware
	BookmarkStore store.BookmarkStoreIface
	DB            *sqlx.DB
	Log           *zap.Logger
}

// NewRouter assembles the full chi router: operational endpoints, the open
// auth endpoints, and the bearer-protected bookmark API.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(deps.Log))

	r.Get("/healthz", healthz(deps.DB))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(jsonContentType)

		// Auth routes (no token required)
		r.Post("/auth/signup", deps.AuthHandlers.Signup)
		r.Post("/auth/login", deps.AuthHandlers.Login)

		// Bookmark routes, all behind bearer token authentication
		r.Group(func(r chi.Router) {
			r.Use(deps.BearerAuth.Authenticate)
			registerBookmarkRoutes(r, deps.BookmarkStore, deps.Log)
		})
	})

	return r
}

// healthz reports liveness. It pings the database so a wedged pool surfaces
// as unhealthy rather than a 200.
func healthz(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// jsonContentType sets Content-Type: application/json on all API responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
