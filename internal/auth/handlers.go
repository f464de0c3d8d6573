package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/adwaithaSV/bookmark-backend/internal/metrics"
	"github.com/adwaithaSV/bookmark-backend/internal/store"
)

// Handlers provides the unauthenticated signup and login endpoints.
type Handlers struct {
	users  store.UserStoreIface
	tokens *TokenService
	log    *zap.Logger
}

func NewHandlers(users store.UserStoreIface, tokens *TokenService, log *zap.Logger) *Handlers {
	return &Handlers{users: users, tokens: tokens, log: log}
}

// credentialsRequest is the request body for both signup and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse is the login response body.
type tokenResponse struct {
	Token string `json:"token"`
}

// Signup registers a new user. It does not log the user in.
// POST /api/auth/signup
//
// @Summary      Register a new account
// @Description  Creates a user with a hashed password. Does not issue a token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Credentials"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		h.log.Error("hash password", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	// The users table's unique index is the authoritative duplicate check;
	// no racy lookup-then-insert.
	if _, err := h.users.Create(r.Context(), req.Username, hash); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			writeMessage(w, http.StatusBadRequest, "Username already exists!")
			return
		}
		h.log.Error("create user", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.SignupsTotal.Inc()
	writeMessage(w, http.StatusOK, "Registration successful! Please log in.")
}

// Login verifies credentials and returns a signed bearer token. Unknown
// usernames and wrong passwords produce the identical response so callers
// cannot enumerate accounts.
// POST /api/auth/login
//
// @Summary      Log in
// @Description  Verifies credentials and returns a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.log.Error("lookup user", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err != nil || !VerifyPassword(req.Password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		writeMessage(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		h.log.Error("issue token", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
