package user_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"globalnews/internal/domain/entity"
	"globalnews/internal/infra/notifier"
	"globalnews/internal/repository"
	userUC "globalnews/internal/usecase/user"
)

/* ───────── stubs ───────── */

type stubUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int
	err     error
}

func newStub() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]*entity.User{}, nextID: 1}
}

func (s *stubUserRepo) byID(id string) *entity.User {
	for _, u := range s.byEmail {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *stubUserRepo) Insert(_ context.Context, u *entity.User) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	id := fmt.Sprintf("%024x", s.nextID)
	s.nextID++
	cp := *u
	cp.ID = id
	s.byEmail[u.Email] = &cp
	return id, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byEmail[email], nil
}

func (s *stubUserRepo) Find(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.User
	for _, u := range s.byEmail {
		if f.Role != nil && u.Role != *f.Role {
			continue
		}
		if f.Status != nil && u.Status != *f.Status {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func applyPatch(u *entity.User, p entity.UserPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}

func (s *stubUserRepo) UpdateByEmail(_ context.Context, email string, p entity.UserPatch) (repository.UpdateResult, error) {
	if s.err != nil {
		return repository.UpdateResult{}, s.err
	}
	u, ok := s.byEmail[email]
	if !ok {
		return repository.UpdateResult{}, nil
	}
	applyPatch(u, p)
	return repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubUserRepo) UpdateByID(_ context.Context, id string, p entity.UserPatch) (repository.UpdateResult, error) {
	if s.err != nil {
		return repository.UpdateResult{}, s.err
	}
	u := s.byID(id)
	if u == nil {
		return repository.UpdateResult{}, nil
	}
	applyPatch(u, p)
	return repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubUserRepo) DeleteByEmail(_ context.Context, email string) (repository.DeleteResult, error) {
	if s.err != nil {
		return repository.DeleteResult{}, s.err
	}
	if _, ok := s.byEmail[email]; !ok {
		return repository.DeleteResult{}, nil
	}
	delete(s.byEmail, email)
	return repository.DeleteResult{DeletedCount: 1}, nil
}

func (s *stubUserRepo) DeleteByID(_ context.Context, id string) (repository.DeleteResult, error) {
	if s.err != nil {
		return repository.DeleteResult{}, s.err
	}
	u := s.byID(id)
	if u == nil {
		return repository.DeleteResult{}, nil
	}
	delete(s.byEmail, u.Email)
	return repository.DeleteResult{DeletedCount: 1}, nil
}

func (s *stubUserRepo) AddListItem(_ context.Context, email string, field repository.ListField, newsID string) (repository.UpdateResult, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return repository.UpdateResult{}, nil
	}
	list := &u.Bookmarks
	if field == repository.ListFavorites {
		list = &u.Favorites
	}
	for _, id := range *list {
		if id == newsID {
			return repository.UpdateResult{MatchedCount: 1}, nil
		}
	}
	*list = append(*list, newsID)
	return repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubUserRepo) RemoveListItem(_ context.Context, email string, field repository.ListField, newsID string) (repository.UpdateResult, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return repository.UpdateResult{}, nil
	}
	list := &u.Bookmarks
	if field == repository.ListFavorites {
		list = &u.Favorites
	}
	out := (*list)[:0]
	for _, id := range *list {
		if id != newsID {
			out = append(out, id)
		}
	}
	*list = out
	return repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// spyNotify records dispatched emails synchronously.
type spyNotify struct {
	emails []notifier.Email
}

func (s *spyNotify) Dispatch(_ context.Context, e notifier.Email) { s.emails = append(s.emails, e) }
func (s *spyNotify) Shutdown(context.Context) error               { return nil }

/* ───────── tests ───────── */

func TestRegister(t *testing.T) {
	repo := newStub()
	spy := &spyNotify{}
	svc := &userUC.Service{Repo: repo, Notify: spy}

	u, err := svc.Register(context.Background(), userUC.RegisterInput{Name: "Ada", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Role != entity.RoleNormalUser || u.Status != entity.StatusActive {
		t.Errorf("new user role/status = %q/%q, want Normal User/Active", u.Role, u.Status)
	}
	if len(spy.emails) != 1 || spy.emails[0].To != "ada@example.com" {
		t.Errorf("expected one welcome email to the new user, got %+v", spy.emails)
	}

	if _, err := svc.Register(context.Background(), userUC.RegisterInput{Email: "ada@example.com"}); !errors.Is(err, userUC.ErrDuplicateUser) {
		t.Errorf("duplicate registration: got %v, want ErrDuplicateUser", err)
	}
	if len(spy.emails) != 1 {
		t.Error("duplicate registration must not send email")
	}
}

func TestReporterRequestFlow(t *testing.T) {
	repo := newStub()
	spy := &spyNotify{}
	svc := &userUC.Service{Repo: repo, Notify: spy}

	if _, err := svc.Register(context.Background(), userUC.RegisterInput{Email: "r@example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.RequestReporter(context.Background(), "r@example.com"); err != nil {
		t.Fatalf("RequestReporter: %v", err)
	}

	pending, err := svc.PendingReporterRequests(context.Background())
	if err != nil {
		t.Fatalf("PendingReporterRequests: %v", err)
	}
	if len(pending) != 1 || pending[0].Email != "r@example.com" {
		t.Fatalf("pending = %+v, want the requesting user", pending)
	}

	if err := svc.ResolveReporterRequest(context.Background(), "r@example.com", "promote"); !errors.Is(err, userUC.ErrInvalidAction) {
		t.Errorf("unknown action: got %v, want ErrInvalidAction", err)
	}
	if err := svc.ResolveReporterRequest(context.Background(), "r@example.com", userUC.ActionApprove); err != nil {
		t.Fatalf("approve: %v", err)
	}

	u, _ := svc.GetByEmail(context.Background(), "r@example.com")
	if u.Role != entity.RoleReporter || u.Status != entity.StatusApproved {
		t.Errorf("role/status = %q/%q, want Reporter/Approved", u.Role, u.Status)
	}
	if len(spy.emails) != 2 {
		t.Errorf("expected welcome + approval emails, got %d", len(spy.emails))
	}
}

func TestManageUser(t *testing.T) {
	repo := newStub()
	svc := &userUC.Service{Repo: repo}
	if _, err := svc.Register(context.Background(), userUC.RegisterInput{Email: "m@example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	name := "Renamed"
	if err := svc.ManageUser(context.Background(), "m@example.com", userUC.ActionEdit, entity.UserPatch{Name: &name}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	u, _ := svc.GetByEmail(context.Background(), "m@example.com")
	if u.Name != "Renamed" {
		t.Errorf("name = %q, want Renamed", u.Name)
	}

	if err := svc.ManageUser(context.Background(), "m@example.com", "purge", entity.UserPatch{}); !errors.Is(err, userUC.ErrInvalidAction) {
		t.Errorf("unknown action: got %v, want ErrInvalidAction", err)
	}
	if err := svc.ManageUser(context.Background(), "m@example.com", userUC.ActionDelete, entity.UserPatch{}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByEmail(context.Background(), "m@example.com"); !errors.Is(err, userUC.ErrUserNotFound) {
		t.Errorf("after delete: got %v, want ErrUserNotFound", err)
	}
}

func TestIsAdmin(t *testing.T) {
	repo := newStub()
	svc := &userUC.Service{Repo: repo}
	u, err := svc.Register(context.Background(), userUC.RegisterInput{Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	admin, err := svc.IsAdmin(context.Background(), "a@example.com")
	if err != nil || admin {
		t.Errorf("fresh user IsAdmin = %v, %v; want false, nil", admin, err)
	}

	if err := svc.PromoteToAdmin(context.Background(), u.ID); err != nil {
		t.Fatalf("PromoteToAdmin: %v", err)
	}
	admin, err = svc.IsAdmin(context.Background(), "a@example.com")
	if err != nil || !admin {
		t.Errorf("promoted user IsAdmin = %v, %v; want true, nil", admin, err)
	}

	if err := svc.PromoteToAdmin(context.Background(), "short"); !errors.Is(err, userUC.ErrInvalidUserID) {
		t.Errorf("malformed ID: got %v, want ErrInvalidUserID", err)
	}
	if _, err := svc.IsAdmin(context.Background(), "nobody@example.com"); !errors.Is(err, userUC.ErrUserNotFound) {
		t.Errorf("absent user: got %v, want ErrUserNotFound", err)
	}
}

func TestBookmarksAndFavorites(t *testing.T) {
	repo := newStub()
	svc := &userUC.Service{Repo: repo}
	if _, err := svc.Register(context.Background(), userUC.RegisterInput{Email: "b@example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	newsID := fmt.Sprintf("%024x", 42)
	if err := svc.AddListItem(context.Background(), "b@example.com", repository.ListBookmarks, newsID); err != nil {
		t.Fatalf("AddListItem: %v", err)
	}
	// Adding twice keeps the set semantics.
	if err := svc.AddListItem(context.Background(), "b@example.com", repository.ListBookmarks, newsID); err != nil {
		t.Fatalf("AddListItem twice: %v", err)
	}

	got, err := svc.ListItems(context.Background(), "b@example.com", repository.ListBookmarks)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(got) != 1 || got[0] != newsID {
		t.Errorf("bookmarks = %v, want exactly one entry", got)
	}

	favs, err := svc.ListItems(context.Background(), "b@example.com", repository.ListFavorites)
	if err != nil {
		t.Fatalf("ListItems favorites: %v", err)
	}
	if len(favs) != 0 {
		t.Errorf("favorites = %v, want empty", favs)
	}

	if err := svc.RemoveListItem(context.Background(), "b@example.com", repository.ListBookmarks, newsID); err != nil {
		t.Fatalf("RemoveListItem: %v", err)
	}
	got, _ = svc.ListItems(context.Background(), "b@example.com", repository.ListBookmarks)
	if len(got) != 0 {
		t.Errorf("bookmarks after removal = %v, want empty", got)
	}

	if err := svc.AddListItem(context.Background(), "nobody@example.com", repository.ListBookmarks, newsID); !errors.Is(err, userUC.ErrUserNotFound) {
		t.Errorf("absent user: got %v, want ErrUserNotFound", err)
	}
}
