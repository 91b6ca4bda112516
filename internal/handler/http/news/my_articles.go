package news

import (
	"net/http"

	"globalnews/internal/handler/http/respond"
	newsUC "globalnews/internal/usecase/news"
)

type MyArticlesHandler struct{ Svc *newsUC.Service }

// ServeHTTP lists the articles authored by the given email.
func (h MyArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.ByAuthor(r.Context(), r.PathValue("email"))
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
