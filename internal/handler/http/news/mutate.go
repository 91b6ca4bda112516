package news

import (
	"encoding/json"
	"errors"
	"net/http"

	"globalnews/internal/domain/entity"
	"globalnews/internal/handler/http/respond"
	newsUC "globalnews/internal/usecase/news"
)

// articleUpdate carries the editable fields of an edit mutation. Pointer
// fields distinguish "absent" from zero values.
type articleUpdate struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
	Category     *string `json:"category"`
	Region       *string `json:"region"`
	IsLive       *bool   `json:"isLive"`
	BreakingNews *bool   `json:"breaking_news"`
	PopularNews  *bool   `json:"popular_news"`
}

func (u *articleUpdate) toPatch() entity.ArticlePatch {
	if u == nil {
		return entity.ArticlePatch{}
	}
	return entity.ArticlePatch{
		Title:        u.Title,
		Description:  u.Description,
		Image:        u.Image,
		Category:     u.Category,
		Region:       u.Region,
		IsLive:       u.IsLive,
		BreakingNews: u.BreakingNews,
		PopularNews:  u.PopularNews,
	}
}

type MutateHandler struct{ Svc *newsUC.Service }

// ServeHTTP applies an edit or delete mutation, discriminated by the
// action field of the request body.
func (h MutateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action         string         `json:"action"`
		UpdatedArticle *articleUpdate `json:"updatedArticle"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	id := r.PathValue("id")

	var err error
	switch req.Action {
	case "edit":
		err = h.Svc.Edit(r.Context(), id, req.UpdatedArticle.toPatch())
	case "delete":
		err = h.Svc.Delete(r.Context(), id)
	default:
		respond.SafeError(w, http.StatusBadRequest, newsUC.ErrInvalidAction)
		return
	}

	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, newsUC.ErrInvalidNewsID) || errors.Is(err, newsUC.ErrEmptyPatch) {
			code = http.StatusBadRequest
		} else if errors.Is(err, newsUC.ErrNewsNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]bool{"acknowledged": true})
}
