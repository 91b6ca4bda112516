// Package news provides use cases for publishing and querying news articles.
// It implements the feed query rules (category/region/date-bucket filtering,
// timestamp-descending ordering, pagination) and the publish flow that feeds
// the live broadcast channel.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrNewsNotFound indicates that the requested article was not found.
	ErrNewsNotFound = errors.New("news not found")

	// ErrInvalidNewsID indicates that the provided article ID is not a
	// well-formed store identifier (24 hex characters).
	ErrInvalidNewsID = errors.New("invalid news ID")

	// ErrInvalidAction indicates an unrecognized action discriminator on
	// the multi-purpose mutation endpoint.
	ErrInvalidAction = errors.New("invalid action")

	// ErrEmptyPatch indicates an edit whose patch sets no fields.
	ErrEmptyPatch = errors.New("at least one field is required")
)
