package user

import (
	"encoding/json"
	"net/http"

	"globalnews/internal/handler/http/respond"
	"globalnews/internal/repository"
	userUC "globalnews/internal/usecase/user"
)

// listMutation adds or removes one news ID on a bookmark/favorite list.
type listMutation struct {
	Svc    *userUC.Service
	Field  repository.ListField
	Remove bool
}

func (h listMutation) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email  string `json:"email"`
		NewsID string `json:"newsId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var err error
	if h.Remove {
		err = h.Svc.RemoveListItem(r.Context(), req.Email, h.Field, req.NewsID)
	} else {
		err = h.Svc.AddListItem(r.Context(), req.Email, h.Field, req.NewsID)
	}
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]bool{"acknowledged": true})
}

// listQuery returns the news IDs on a bookmark/favorite list.
type listQuery struct {
	Svc   *userUC.Service
	Field repository.ListField
}

func (h listQuery) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListItems(r.Context(), r.PathValue("email"), h.Field)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	if items == nil {
		items = []string{}
	}
	respond.JSON(w, http.StatusOK, items)
}
