// Package user provides HTTP handlers for registration, role management,
// and per-user bookmark/favorite lists.
package user

import (
	"errors"
	"net/http"

	"globalnews/internal/domain/entity"
	userUC "globalnews/internal/usecase/user"
)

// DTO is the wire representation of a user.
type DTO struct {
	ID        string   `json:"_id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	Status    string   `json:"status"`
	Bookmarks []string `json:"bookmarks"`
	Favorites []string `json:"favorites"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		Bookmarks: emptyIfNil(u.Bookmarks),
		Favorites: emptyIfNil(u.Favorites),
	}
}

func toDTOs(users []*entity.User) []DTO {
	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, toDTO(u))
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	var validationErr *entity.ValidationError
	switch {
	case errors.Is(err, userUC.ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, userUC.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, userUC.ErrInvalidUserID), errors.Is(err, userUC.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
