package user

import (
	"net/http"

	"globalnews/internal/handler/http/respond"
	userUC "globalnews/internal/usecase/user"
)

type ListHandler struct{ Svc *userUC.Service }

// ServeHTTP returns every account.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(users))
}

type GetHandler struct{ Svc *userUC.Service }

// ServeHTTP returns one account by email, 404 when absent.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, err := h.Svc.GetByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(u))
}

type IsAdminHandler struct{ Svc *userUC.Service }

// ServeHTTP reports whether the account carries the admin role.
func (h IsAdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	admin, err := h.Svc.IsAdmin(r.Context(), r.PathValue("email"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"admin": admin})
}
