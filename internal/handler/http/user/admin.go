package user

import (
	"encoding/json"
	"net/http"

	"globalnews/internal/domain/entity"
	"globalnews/internal/handler/http/respond"
	userUC "globalnews/internal/usecase/user"
)

type PendingRequestsHandler struct{ Svc *userUC.Service }

// ServeHTTP lists Normal Users waiting on a reporter request decision.
func (h PendingRequestsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.PendingReporterRequests(r.Context())
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(users))
}

type ApproveRequestHandler struct{ Svc *userUC.Service }

// ServeHTTP approves or cancels a pending reporter request.
func (h ApproveRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email  string `json:"email"`
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.ResolveReporterRequest(r.Context(), req.Email, req.Action); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"acknowledged": true})
}

// userUpdate carries the editable fields of an admin edit.
type userUpdate struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

func (u *userUpdate) toPatch() entity.UserPatch {
	if u == nil {
		return entity.UserPatch{}
	}
	return entity.UserPatch{Name: u.Name, Role: u.Role, Status: u.Status}
}

type ManageUserHandler struct{ Svc *userUC.Service }

// ServeHTTP edits or deletes an account by email, discriminated by action.
func (h ManageUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string      `json:"email"`
		Action      string      `json:"action"`
		UpdatedUser *userUpdate `json:"updatedUser"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.ManageUser(r.Context(), req.Email, req.Action, req.UpdatedUser.toPatch()); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"acknowledged": true})
}

// idAction applies a role/status point update identified by a store ID.
type idAction struct {
	apply func(r *http.Request, id string) error
}

func (h idAction) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.apply(r, r.PathValue("id")); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"acknowledged": true})
}

// PromoteHandler grants the admin role.
func PromoteHandler(svc *userUC.Service) http.Handler {
	return idAction{func(r *http.Request, id string) error {
		return svc.PromoteToAdmin(r.Context(), id)
	}}
}

// BlockHandler marks the account as blocked.
func BlockHandler(svc *userUC.Service) http.Handler {
	return idAction{func(r *http.Request, id string) error {
		return svc.Block(r.Context(), id)
	}}
}

// ActivateHandler restores a blocked account.
func ActivateHandler(svc *userUC.Service) http.Handler {
	return idAction{func(r *http.Request, id string) error {
		return svc.Activate(r.Context(), id)
	}}
}

// DeleteHandler removes an account by store ID.
func DeleteHandler(svc *userUC.Service) http.Handler {
	return idAction{func(r *http.Request, id string) error {
		return svc.DeleteByID(r.Context(), id)
	}}
}
