package news

import (
	"log/slog"
	"net/http"

	newsUC "globalnews/internal/usecase/news"
)

// Register wires all news routes onto the mux. Mutating routes are wrapped
// with limit when it is non-nil (rate limiting). The odd /newss/latestNews
// path is part of the frontend contract and is kept as-is.
func Register(mux *http.ServeMux, svc *newsUC.Service, logger *slog.Logger, limit func(http.Handler) http.Handler) {
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}

	mux.Handle("GET /news", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /news/{id}", GetHandler{svc})
	mux.Handle("GET /news/my-articles/{email}", MyArticlesHandler{svc})
	mux.Handle("GET /newss/latestNews", LatestHandler{svc})

	mux.Handle("POST /news", limit(CreateHandler{svc}))
	mux.Handle("PATCH /news/{id}", limit(MutateHandler{svc}))
}
