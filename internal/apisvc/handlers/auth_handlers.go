package handlers

import (
	"net/http"

	"github.com/finpay/finpay-services/internal/apisvc/validation"
	log "github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Warnf("failed login for %s: %v", req.Email, err)
		h.CreateResponse(w, Response{Status: "error", Message: err.Error(), Code: http.StatusUnauthorized, Errors: []string{err.Error()}})
		return
	}

	token, err := h.newToken(user.ID, user.Role)
	if err != nil {
		h.badRequest(w, "failed to issue token")
		return
	}

	h.ok(w, "login successful", map[string]interface{}{
		"token": token,
		"user":  user,
	})
}
