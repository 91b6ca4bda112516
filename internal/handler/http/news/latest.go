package news

import (
	"net/http"

	"globalnews/internal/handler/http/respond"
	newsUC "globalnews/internal/usecase/news"
)

type LatestHandler struct{ Svc *newsUC.Service }

// ServeHTTP returns the seven most recent articles, no filters.
func (h LatestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.Latest(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
