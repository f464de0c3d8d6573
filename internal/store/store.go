package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist or is
	// not visible to the acting user. Ownership failures deliberately map to
	// the same error so callers cannot distinguish "missing" from "not yours".
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is returned when creating a user whose username is taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrBookmarkLimit is returned when a user has reached the configured
	// per-user bookmark cap.
	ErrBookmarkLimit = errors.New("bookmark limit reached")
)

// UserStoreIface exposes user record operations.
type UserStoreIface interface {
	Create(ctx context.Context, username, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// BookmarkStoreIface exposes all bookmark data operations. Every method that
// touches an existing bookmark takes the owner's user ID; no handler MAY
// query the DB directly or skip the owner scope.
type BookmarkStoreIface interface {
	Create(ctx context.Context, ownerID, title, url string) (*Bookmark, error)
	GetByID(ctx context.Context, id, ownerID string) (*Bookmark, error)
	ListByOwner(ctx context.Context, ownerID string, q ListQuery) (*Page, error)
	Update(ctx context.Context, id, ownerID, title, url string) (*Bookmark, error)
	Delete(ctx context.Context, id, ownerID string) error
}
