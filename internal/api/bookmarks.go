package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/adwaithaSV/bookmark-backend/internal/auth"
	"github.com/adwaithaSV/bookmark-backend/internal/bookmarks"
	"github.com/adwaithaSV/bookmark-backend/internal/metrics"
	"github.com/adwaithaSV/bookmark-backend/internal/store"
)

const msgNotFoundOrDenied = "bookmark not found or access denied"

// bookmarksHandler provides REST handlers for the caller's bookmarks. Every
// operation is scoped to the authenticated user injected by the bearer
// middleware.
type bookmarksHandler struct {
	bookmarks store.BookmarkStoreIface
	log       *zap.Logger
}

func registerBookmarkRoutes(r chi.Router, bs store.BookmarkStoreIface, log *zap.Logger) {
	h := &bookmarksHandler{bookmarks: bs, log: log}
	r.Get("/bookmarks", h.List)
	r.Post("/bookmarks", h.Create)
	r.Get("/bookmarks/{id}", h.Get)
	r.Put("/bookmarks/{id}", h.Update)
	r.Delete("/bookmarks/{id}", h.Delete)
}

// List returns one page of the caller's bookmarks, optionally filtered by a
// case-insensitive search over title and url.
// GET /api/bookmarks
//
// @Summary      List bookmarks
// @Description  Returns a page of the caller's bookmarks, sorted and optionally filtered.
// @Tags         Bookmarks
// @Produce      json
// @Param        page        query     int     false  "Page number (0-based)"
// @Param        size        query     int     false  "Page size"
// @Param        sortBy      query     string  false  "Sort attribute: addedTime, title, url, id"
// @Param        sortDir     query     string  false  "asc or desc"
// @Param        searchTerm  query     string  false  "Substring filter on title and url"
// @Success      200  {object}  PageResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Security     BearerToken
// @Router       /api/bookmarks [get]
func (h *bookmarksHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q, err := parseListQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.bookmarks.ListByOwner(r.Context(), user.ID, q)
	if err != nil {
		h.log.Error("list bookmarks", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.BookmarkOpsTotal.WithLabelValues("list").Inc()
	writeJSON(w, http.StatusOK, toPageResponse(page))
}

// Create adds a bookmark owned by the caller. The owner and added time are
// assigned server-side; client-supplied values for either are ignored.
// POST /api/bookmarks
//
// @Summary      Add a bookmark
// @Description  Creates a bookmark owned by the caller.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body      BookmarkRequest  true  "Bookmark to add"
// @Success      201   {object}  BookmarkResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Security     BearerToken
// @Router       /api/bookmarks [post]
func (h *bookmarksHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	req, ok := decodeBookmarkRequest(w, r)
	if !ok {
		return
	}

	b, err := h.bookmarks.Create(r.Context(), user.ID, req.Title, req.URL)
	if err != nil {
		if errors.Is(err, store.ErrBookmarkLimit) {
			writeError(w, http.StatusForbidden, "bookmark limit reached")
			return
		}
		h.log.Error("create bookmark", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.BookmarkOpsTotal.WithLabelValues("create").Inc()
	writeJSON(w, http.StatusCreated, toBookmarkResponse(b))
}

// Get returns a single bookmark owned by the caller. A bookmark that does
// not exist and one owned by someone else are indistinguishable: both 404.
// GET /api/bookmarks/{id}
//
// @Summary      Get a bookmark
// @Tags         Bookmarks
// @Produce      json
// @Param        id   path      string  true  "Bookmark ID"
// @Success      200  {object}  BookmarkResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerToken
// @Router       /api/bookmarks/{id} [get]
func (h *bookmarksHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	b, err := h.bookmarks.GetByID(r.Context(), chi.URLParam(r, "id"), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgNotFoundOrDenied)
			return
		}
		h.log.Error("get bookmark", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.BookmarkOpsTotal.WithLabelValues("get").Inc()
	writeJSON(w, http.StatusOK, toBookmarkResponse(b))
}

// Update replaces title and url on the caller's bookmark. Owner and added
// time are immutable. Same 404 contract as Get.
// PUT /api/bookmarks/{id}
//
// @Summary      Update a bookmark
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Bookmark ID"
// @Param        body  body      BookmarkRequest  true  "New title and url"
// @Success      200   {object}  BookmarkResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerToken
// @Router       /api/bookmarks/{id} [put]
func (h *bookmarksHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	req, ok := decodeBookmarkRequest(w, r)
	if !ok {
		return
	}

	b, err := h.bookmarks.Update(r.Context(), chi.URLParam(r, "id"), user.ID, req.Title, req.URL)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgNotFoundOrDenied)
			return
		}
		h.log.Error("update bookmark", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.BookmarkOpsTotal.WithLabelValues("update").Inc()
	writeJSON(w, http.StatusOK, toBookmarkResponse(b))
}

// Delete permanently removes the caller's bookmark. Same 404 contract as Get.
// DELETE /api/bookmarks/{id}
//
// @Summary      Delete a bookmark
// @Tags         Bookmarks
// @Param        id   path  string  true  "Bookmark ID"
// @Success      204  "No Content"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerToken
// @Router       /api/bookmarks/{id} [delete]
func (h *bookmarksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.bookmarks.Delete(r.Context(), chi.URLParam(r, "id"), user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgNotFoundOrDenied)
			return
		}
		h.log.Error("delete bookmark", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.BookmarkOpsTotal.WithLabelValues("delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// decodeBookmarkRequest decodes and validates the shared create/update body.
// On failure it writes the 400 response and returns ok=false.
func decodeBookmarkRequest(w http.ResponseWriter, r *http.Request) (BookmarkRequest, bool) {
	var req BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	if err := bookmarks.ValidateTitle(req.Title); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	if err := bookmarks.ValidateURL(req.URL); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}
