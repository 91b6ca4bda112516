package user

import (
	"encoding/json"
	"net/http"

	"globalnews/internal/handler/http/respond"
	userUC "globalnews/internal/usecase/user"
)

type RegisterHandler struct{ Svc *userUC.Service }

// ServeHTTP creates a new account with the default role and fires the
// welcome email. Duplicate emails get 409.
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	u, err := h.Svc.Register(r.Context(), userUC.RegisterInput{Name: req.Name, Email: req.Email})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(u))
}

type RequestReporterHandler struct{ Svc *userUC.Service }

// ServeHTTP marks the account as having requested the Reporter role.
func (h RequestReporterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.RequestReporter(r.Context(), req.Email); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]bool{"acknowledged": true})
}
