// Package repository defines the persistence interfaces the use cases depend on.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"time"

	"globalnews/internal/domain/entity"
)

// TimeRange bounds a query on the article timestamp.
// From is always inclusive. To is exclusive when ExclusiveEnd is set
// (the "today" bucket), inclusive otherwise.
type TimeRange struct {
	From         time.Time
	To           time.Time
	ExclusiveEnd bool
}

// NewsFilter contains optional filters for feed queries.
// Nil fields apply no constraint. Results are always ordered by
// timestamp descending; Skip/Limit apply after ordering.
type NewsFilter struct {
	Category *string
	Region   *string
	Author   *string
	LiveOnly bool
	Time     *TimeRange
	Skip     *int64
	Limit    *int64
}

// UpdateResult reports the outcome of a point update.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// DeleteResult reports the outcome of a point delete.
type DeleteResult struct {
	DeletedCount int64
}

// NewsRepository is the article store contract. Point lookups return
// (nil, nil) when no document matches; callers translate that into
// their own not-found errors.
type NewsRepository interface {
	// Insert persists a new article and returns the store-assigned ID.
	Insert(ctx context.Context, article *entity.Article) (string, error)
	// FindByID retrieves a single article. The id must already be
	// well-formed (entity.IsValidID).
	FindByID(ctx context.Context, id string) (*entity.Article, error)
	// Find executes a filtered feed query ordered by timestamp descending.
	Find(ctx context.Context, filter NewsFilter) ([]*entity.Article, error)
	// Latest returns the limit most recent articles irrespective of filters.
	Latest(ctx context.Context, limit int64) ([]*entity.Article, error)
	// Update applies a $set-style patch to the article with the given ID.
	Update(ctx context.Context, id string, patch entity.ArticlePatch) (UpdateResult, error)
	// Delete physically removes the article with the given ID.
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
