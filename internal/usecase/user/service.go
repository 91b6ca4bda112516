package user

import (
	"context"
	"fmt"

	"globalnews/internal/domain/entity"
	"globalnews/internal/infra/notifier"
	"globalnews/internal/repository"
	"globalnews/internal/usecase/notify"
)

// Actions accepted by the multi-purpose mutation endpoints.
const (
	ActionApprove = "approve"
	ActionCancel  = "cancel"
	ActionEdit    = "edit"
	ActionDelete  = "delete"
)

// Service provides user management use cases. Email side effects are
// dispatched through the notify service and never block or fail a request.
type Service struct {
	Repo   repository.UserRepository
	Notify notify.Service // optional; nil disables email
}

// RegisterInput is the payload of a registration request.
type RegisterInput struct {
	Name  string
	Email string
}

// Register creates a Normal User in Active status and dispatches a welcome
// email. Returns ErrDuplicateUser when the email is already registered.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if in.Email == "" {
		return nil, &entity.ValidationError{Field: "email", Message: "is required"}
	}

	existing, err := s.Repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	u := &entity.User{
		Name:   in.Name,
		Email:  in.Email,
		Role:   entity.RoleNormalUser,
		Status: entity.StatusActive,
	}
	id, err := s.Repo.Insert(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	u.ID = id

	if s.Notify != nil {
		s.Notify.Dispatch(ctx, notifier.Email{
			To:      u.Email,
			Subject: "Welcome to the Global News website!",
			Body:    "Hope you will find a lot of resources here.",
		})
	}
	return u, nil
}

// RequestReporter marks a user as having requested the Reporter role.
// Returns ErrUserNotFound if no user matches the email.
func (s *Service) RequestReporter(ctx context.Context, email string) error {
	status := entity.StatusRequested
	res, err := s.Repo.UpdateByEmail(ctx, email, entity.UserPatch{Status: &status})
	if err != nil {
		return fmt.Errorf("request reporter: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// PendingReporterRequests lists Normal Users whose status is Requested.
func (s *Service) PendingReporterRequests(ctx context.Context) ([]*entity.User, error) {
	role := entity.RoleNormalUser
	status := entity.StatusRequested
	users, err := s.Repo.Find(ctx, repository.UserFilter{Role: &role, Status: &status})
	if err != nil {
		return nil, fmt.Errorf("pending reporter requests: %w", err)
	}
	return users, nil
}

// ResolveReporterRequest approves or cancels a pending reporter request.
// Approval promotes the user to Reporter and notifies them by email.
func (s *Service) ResolveReporterRequest(ctx context.Context, email, action string) error {
	var patch entity.UserPatch
	switch action {
	case ActionApprove:
		role := entity.RoleReporter
		status := entity.StatusApproved
		patch = entity.UserPatch{Role: &role, Status: &status}
	case ActionCancel:
		status := entity.StatusDenied
		patch = entity.UserPatch{Status: &status}
	default:
		return ErrInvalidAction
	}

	res, err := s.Repo.UpdateByEmail(ctx, email, patch)
	if err != nil {
		return fmt.Errorf("resolve reporter request: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}

	if action == ActionApprove && s.Notify != nil {
		s.Notify.Dispatch(ctx, notifier.Email{
			To:      email,
			Subject: "Your reporter request was approved",
			Body:    "You can now publish articles on Global News.",
		})
	}
	return nil
}

// ManageUser edits or deletes a user by email, discriminated by action.
func (s *Service) ManageUser(ctx context.Context, email, action string, patch entity.UserPatch) error {
	switch action {
	case ActionEdit:
		res, err := s.Repo.UpdateByEmail(ctx, email, patch)
		if err != nil {
			return fmt.Errorf("edit user: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrUserNotFound
		}
		return nil
	case ActionDelete:
		res, err := s.Repo.DeleteByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if res.DeletedCount == 0 {
			return ErrUserNotFound
		}
		return nil
	default:
		return ErrInvalidAction
	}
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.Find(ctx, repository.UserFilter{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetByEmail retrieves a single user. Returns ErrUserNotFound if absent.
func (s *Service) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// IsAdmin reports whether the user with the given email carries the admin
// role. Returns ErrUserNotFound if the user does not exist.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role by store ID.
func (s *Service) PromoteToAdmin(ctx context.Context, id string) error {
	role := entity.RoleAdmin
	return s.updateByID(ctx, id, entity.UserPatch{Role: &role})
}

// Block marks the user as blocked by store ID.
func (s *Service) Block(ctx context.Context, id string) error {
	status := entity.StatusBlocked
	return s.updateByID(ctx, id, entity.UserPatch{Status: &status})
}

// Activate restores a blocked user by store ID.
func (s *Service) Activate(ctx context.Context, id string) error {
	status := entity.StatusActive
	return s.updateByID(ctx, id, entity.UserPatch{Status: &status})
}

func (s *Service) updateByID(ctx context.Context, id string, patch entity.UserPatch) error {
	if !entity.IsValidID(id) {
		return ErrInvalidUserID
	}
	res, err := s.Repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return fmt.Errorf("update user by ID: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteByID removes a user by store ID.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	if !entity.IsValidID(id) {
		return ErrInvalidUserID
	}
	res, err := s.Repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user by ID: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AddListItem appends a news ID to the user's bookmark or favorite list.
func (s *Service) AddListItem(ctx context.Context, email string, field repository.ListField, newsID string) error {
	res, err := s.Repo.AddListItem(ctx, email, field, newsID)
	if err != nil {
		return fmt.Errorf("add %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// RemoveListItem removes a news ID from the user's bookmark or favorite list.
func (s *Service) RemoveListItem(ctx context.Context, email string, field repository.ListField, newsID string) error {
	res, err := s.Repo.RemoveListItem(ctx, email, field, newsID)
	if err != nil {
		return fmt.Errorf("remove %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListItems returns the user's bookmark or favorite list.
func (s *Service) ListItems(ctx context.Context, email string, field repository.ListField) ([]string, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	switch field {
	case repository.ListBookmarks:
		return u.Bookmarks, nil
	case repository.ListFavorites:
		return u.Favorites, nil
	default:
		return nil, fmt.Errorf("unknown list field %q", field)
	}
}
