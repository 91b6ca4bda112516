package repository

import (
	"context"

	"globalnews/internal/domain/entity"
)

// ListField names an array field of the user document that holds article IDs.
type ListField string

// User document list fields.
const (
	ListBookmarks ListField = "bookmarks"
	ListFavorites ListField = "favorites"
)

// UserFilter contains optional filters for user queries.
type UserFilter struct {
	Role   *string
	Status *string
}

// UserRepository is the user store contract. Point lookups return
// (nil, nil) when no document matches.
type UserRepository interface {
	Insert(ctx context.Context, user *entity.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Find(ctx context.Context, filter UserFilter) ([]*entity.User, error)
	UpdateByEmail(ctx context.Context, email string, patch entity.UserPatch) (UpdateResult, error)
	// UpdateByID applies a patch by store ID. The id must be well-formed.
	UpdateByID(ctx context.Context, id string, patch entity.UserPatch) (UpdateResult, error)
	DeleteByEmail(ctx context.Context, email string) (DeleteResult, error)
	DeleteByID(ctx context.Context, id string) (DeleteResult, error)
	// AddListItem adds newsID to the named list field without duplicates.
	AddListItem(ctx context.Context, email string, field ListField, newsID string) (UpdateResult, error)
	// RemoveListItem removes newsID from the named list field.
	RemoveListItem(ctx context.Context, email string, field ListField, newsID string) (UpdateResult, error)
}
