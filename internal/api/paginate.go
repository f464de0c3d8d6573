package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/adwaithaSV/bookmark-backend/internal/store"
)

const (
	defaultPageSize = 3
	maxPageSize     = 100
)

// parseListQuery extracts page, size, sortBy, sortDir, and searchTerm from
// query parameters. page defaults to 0 and is clamped at 0; size defaults to
// 3 and is silently capped at 100. sortBy and sortDir are validated and
// produce an error for the handler to surface as a 400.
func parseListQuery(r *http.Request) (store.ListQuery, error) {
	q := store.ListQuery{
		Page:    0,
		Size:    defaultPageSize,
		SortBy:  "addedTime",
		SortDir: "desc",
	}

	params := r.URL.Query()

	if p := params.Get("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return q, fmt.Errorf("page must be an integer")
		}
		if parsed > 0 {
			q.Page = parsed
		}
	}

	if s := params.Get("size"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return q, fmt.Errorf("size must be an integer")
		}
		if parsed > 0 {
			q.Size = parsed
		}
	}
	if q.Size > maxPageSize {
		q.Size = maxPageSize
	}

	if sortBy := params.Get("sortBy"); sortBy != "" {
		if _, ok := store.SortColumn(sortBy); !ok {
			return q, fmt.Errorf("cannot sort by %q", sortBy)
		}
		q.SortBy = sortBy
	}

	if sortDir := params.Get("sortDir"); sortDir != "" {
		switch strings.ToLower(sortDir) {
		case "asc", "desc":
			q.SortDir = strings.ToLower(sortDir)
		default:
			return q, fmt.Errorf("sortDir must be asc or desc")
		}
	}

	q.Search = strings.TrimSpace(params.Get("searchTerm"))

	return q, nil
}
