package user

import (
	"net/http"

	"globalnews/internal/repository"
	userUC "globalnews/internal/usecase/user"
)

// Register wires all user routes onto the mux. Mutating routes are wrapped
// with limit when it is non-nil.
func Register(mux *http.ServeMux, svc *userUC.Service, limit func(http.Handler) http.Handler) {
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}

	mux.Handle("POST /register", limit(RegisterHandler{svc}))
	mux.Handle("POST /request-reporter", limit(RequestReporterHandler{svc}))

	mux.Handle("GET /pending-reporter-requests", PendingRequestsHandler{svc})
	mux.Handle("PATCH /admin/approve-request", limit(ApproveRequestHandler{svc}))
	mux.Handle("PUT /admin/manage-user", limit(ManageUserHandler{svc}))

	mux.Handle("GET /users", ListHandler{svc})
	mux.Handle("GET /user/{email}", GetHandler{svc})
	mux.Handle("GET /users/admin/{email}", IsAdminHandler{svc})

	mux.Handle("PATCH /users/admin/{id}", limit(PromoteHandler(svc)))
	mux.Handle("PATCH /users/block/{id}", limit(BlockHandler(svc)))
	mux.Handle("PATCH /users/active/{id}", limit(ActivateHandler(svc)))
	mux.Handle("DELETE /users/{id}", limit(DeleteHandler(svc)))

	mux.Handle("POST /bookmark", limit(listMutation{Svc: svc, Field: repository.ListBookmarks}))
	mux.Handle("DELETE /bookmarks", limit(listMutation{Svc: svc, Field: repository.ListBookmarks, Remove: true}))
	mux.Handle("GET /bookmarks/{email}", listQuery{Svc: svc, Field: repository.ListBookmarks})

	mux.Handle("POST /favorite", limit(listMutation{Svc: svc, Field: repository.ListFavorites}))
	mux.Handle("DELETE /favorites", limit(listMutation{Svc: svc, Field: repository.ListFavorites, Remove: true}))
	mux.Handle("GET /favorites/{email}", listQuery{Svc: svc, Field: repository.ListFavorites})
}
