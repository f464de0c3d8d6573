// Package bookmarks validates bookmark fields before they reach the store.
package bookmarks

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrTitleEmpty is returned when a title is empty or only whitespace.
	ErrTitleEmpty = errors.New("title must not be empty")

	// ErrURLEmpty is returned when a url is empty or only whitespace.
	ErrURLEmpty = errors.New("url must not be empty")

	// ErrURLFormat is returned when a url is not an absolute http(s) URL.
	ErrURLFormat = errors.New("url must be an absolute http or https URL")
)

// ValidateTitle checks that title is non-blank. Length limits are enforced
// by the schema, not here.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleEmpty
	}
	return nil
}

// ValidateURL checks that raw is a well-formed absolute http or https URL
// with a host. It does NOT fetch the URL or check reachability.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrURLEmpty
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ErrURLFormat
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrURLFormat
	}
	return nil
}
