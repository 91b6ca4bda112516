package news

import (
	"log/slog"
	"net/http"

	"globalnews/internal/common/pagination"
	"globalnews/internal/handler/http/requestid"
	"globalnews/internal/handler/http/respond"
	newsUC "globalnews/internal/usecase/news"
)

type ListHandler struct {
	Svc    *newsUC.Service
	Logger *slog.Logger
}

// ServeHTTP serves the filtered feed. category/region/date narrow the
// result; pages/size paginate it.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseFeedParams(r)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("invalid feed pagination",
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.String("error", err.Error()))
		}
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	q := r.URL.Query()
	articles, err := h.Svc.Feed(r.Context(), newsUC.FeedQuery{
		Category: q.Get("category"),
		Region:   q.Get("region"),
		Date:     q.Get("date"),
		Pages:    params.Pages,
		Size:     params.Size,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
