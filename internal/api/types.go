package api

import (
	"time"

	"github.com/adwaithaSV/bookmark-backend/internal/store"
)

// BookmarkRequest is the request body for creating and updating a bookmark.
// Owner and timestamp fields are not part of the contract; anything else a
// client sends is ignored.
type BookmarkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// BookmarkResponse is the JSON representation of a single bookmark. The
// owner is never serialized.
type BookmarkResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	AddedTime time.Time `json:"addedTime"`
}

// PageResponse is one page of the caller's bookmarks plus navigation
// metadata. Totals reflect only the caller's matching rows.
type PageResponse struct {
	Content       []BookmarkResponse `json:"content"`
	Page          int                `json:"page"`
	Size          int                `json:"size"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
}

func toBookmarkResponse(b *store.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:        b.ID,
		Title:     b.Title,
		URL:       b.URL,
		AddedTime: b.AddedTime,
	}
}

func toPageResponse(p *store.Page) PageResponse {
	content := make([]BookmarkResponse, 0, len(p.Items))
	for _, b := range p.Items {
		content = append(content, toBookmarkResponse(b))
	}
	return PageResponse{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
