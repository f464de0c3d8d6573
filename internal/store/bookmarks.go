package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Bookmark struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	URL       string    `db:"url"`
	OwnerID   string    `db:"owner_id"`
	AddedTime time.Time `db:"added_time"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ListQuery describes one page of an owner's bookmarks. SortBy is the
// external attribute name (addedTime, title, url, id) and must have been
// validated with SortColumn before reaching the store.
type ListQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string // "asc" or "desc"
	Search  string // trimmed; empty means no filter
}

// Page is a bounded slice of an owner's bookmarks plus navigation metadata.
// Totals count only the owner's rows matching the query.
type Page struct {
	Items         []*Bookmark
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// sortColumns maps external sort attribute names to their columns. Sorting
// is restricted to this whitelist; the column name is interpolated into SQL.
var sortColumns = map[string]string{
	"addedTime": "added_time",
	"title":     "title",
	"url":       "url",
	"id":        "id",
}

// SortColumn resolves an external sort attribute to its column name.
func SortColumn(field string) (string, bool) {
	col, ok := sortColumns[field]
	return col, ok
}

type BookmarkStore struct {
	db *sqlx.DB

	// maxPerUser caps bookmarks per owner; zero means unlimited.
	maxPerUser int
}

func NewBookmarkStore(db *sqlx.DB, maxPerUser int) *BookmarkStore {
	return &BookmarkStore{db: db, maxPerUser: maxPerUser}
}

func (s *BookmarkStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a bookmark owned by ownerID with a server-assigned ID and
// timestamp. Returns ErrBookmarkLimit when the per-user cap is reached.
func (s *BookmarkStore) Create(ctx context.Context, ownerID, title, url string) (*Bookmark, error) {
	if s.maxPerUser > 0 {
		var count int64
		err := s.db.GetContext(ctx, &count, s.q(`SELECT COUNT(*) FROM bookmarks WHERE owner_id = ?`), ownerID)
		if err != nil {
			return nil, err
		}
		if count >= int64(s.maxPerUser) {
			return nil, ErrBookmarkLimit
		}
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO bookmarks (id, title, url, owner_id, added_time, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), id, title, url, ownerID, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id, ownerID)
}

// GetByID returns the bookmark only if it is owned by ownerID, otherwise
// ErrNotFound. A bookmark owned by someone else is indistinguishable from a
// missing one.
func (s *BookmarkStore) GetByID(ctx context.Context, id, ownerID string) (*Bookmark, error) {
	var b Bookmark
	err := s.db.GetContext(ctx, &b, s.q(`SELECT * FROM bookmarks WHERE id = ? AND owner_id = ?`), id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByOwner returns one page of ownerID's bookmarks. When q.Search is
// non-empty, rows match a case-insensitive substring of title or url.
func (s *BookmarkStore) ListByOwner(ctx context.Context, ownerID string, q ListQuery) (*Page, error) {
	col, ok := SortColumn(q.SortBy)
	if !ok {
		return nil, fmt.Errorf("unsortable attribute %q", q.SortBy)
	}
	dir := "DESC"
	if strings.EqualFold(q.SortDir, "asc") {
		dir = "ASC"
	}

	where := `WHERE owner_id = ?`
	args := []any{ownerID}
	if q.Search != "" {
		where += ` AND (LOWER(title) LIKE ? OR LOWER(url) LIKE ?)`
		pattern := "%" + strings.ToLower(q.Search) + "%"
		args = append(args, pattern, pattern)
	}

	var total int64
	if err := s.db.GetContext(ctx, &total, s.q(`SELECT COUNT(*) FROM bookmarks `+where), args...); err != nil {
		return nil, err
	}

	// Secondary sort on id keeps pagination stable when the sort key ties.
	query := fmt.Sprintf(`SELECT * FROM bookmarks %s ORDER BY %s %s, id ASC LIMIT ? OFFSET ?`, where, col, dir)
	args = append(args, q.Size, q.Page*q.Size)

	items := []*Bookmark{}
	if err := s.db.SelectContext(ctx, &items, s.q(query), args...); err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(q.Size) - 1) / int64(q.Size))
	}

	return &Page{
		Items:         items,
		Page:          q.Page,
		Size:          q.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// Update replaces title and url on the owner's bookmark. Owner and added
// time are immutable. The UPDATE is keyed on both id and owner_id so the
// ownership check and the write are a single atomic statement; zero rows
// affected means ErrNotFound.
func (s *BookmarkStore) Update(ctx context.Context, id, ownerID, title, url string) (*Bookmark, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE bookmarks SET title = ?, url = ?, updated_at = ? WHERE id = ? AND owner_id = ?
	`), title, url, time.Now().UTC(), id, ownerID)
	if err != nil {
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id, ownerID)
}

// Delete removes the owner's bookmark. Same atomic id+owner keying and
// ErrNotFound contract as Update.
func (s *BookmarkStore) Delete(ctx context.Context, id, ownerID string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM bookmarks WHERE id = ? AND owner_id = ?`), id, ownerID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
