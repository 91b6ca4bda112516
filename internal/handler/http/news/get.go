package news

import (
	"errors"
	"net/http"

	"globalnews/internal/handler/http/respond"
	newsUC "globalnews/internal/usecase/news"
)

type GetHandler struct{ Svc *newsUC.Service }

// ServeHTTP returns one article by its store ID.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	article, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, newsUC.ErrInvalidNewsID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, newsUC.ErrNewsNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}
