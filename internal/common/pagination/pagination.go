// Package pagination parses the feed's pages/size query parameters.
package pagination

import (
	"errors"
	"net/http"
	"strconv"
)

// FeedParams carries optional pagination values. Both are nil when the
// client did not ask for pagination.
type FeedParams struct {
	Pages *int64
	Size  *int64
}

// ParseFeedParams reads the pages and size query parameters. Absent
// parameters stay nil; malformed or negative values are an error.
func ParseFeedParams(r *http.Request) (FeedParams, error) {
	var params FeedParams

	pages, err := parseOptionalInt(r.URL.Query().Get("pages"), "pages")
	if err != nil {
		return FeedParams{}, err
	}
	params.Pages = pages

	size, err := parseOptionalInt(r.URL.Query().Get("size"), "size")
	if err != nil {
		return FeedParams{}, err
	}
	params.Size = size

	return params, nil
}

func parseOptionalInt(raw, name string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	if v < 0 {
		return nil, errors.New(name + " cannot be negative")
	}
	return &v, nil
}
