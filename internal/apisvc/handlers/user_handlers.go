package handlers

import (
	"net/http"
	"strings"

	"github.com/finpay/finpay-services/internal/apisvc/service"
	"github.com/finpay/finpay-services/internal/apisvc/validation"
)

type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=SUPERADMIN ADMIN USER"`
	Status   string `json:"status" validate:"omitempty,oneof=PENDING ACTIVE FROZEN SUSPENDED"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=150"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=SUPERADMIN ADMIN USER"`
	Status   *string `json:"status" validate:"omitempty,oneof=PENDING ACTIVE FROZEN SUSPENDED"`
}

func (r UpdateUserRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.FullName != nil {
		f["full_name"] = *r.FullName
	}
	if r.Email != nil {
		f["email"] = *r.Email
	}
	if r.Role != nil {
		f["role"] = *r.Role
	}
	if r.Status != nil {
		f["status"] = *r.Status
	}
	return f
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING ACTIVE FROZEN SUSPENDED"`
}

func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.List(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "users", list)
}

func (h *Handler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid user id")
		return
	}
	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if u == nil {
		h.notFound(w, "user not found")
		return
	}
	h.ok(w, "user", u)
}

func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	created, err := h.users.Create(r.Context(), service.CreateUserParams{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Status:   req.Status,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.created(w, "user created", created)
}

func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid user id")
		return
	}

	var req UpdateUserRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	fields := req.fields()
	if len(fields) == 0 {
		h.validationError(w, []validation.FieldError{{Field: "body", Message: "at least one field is required", Type: "required"}})
		return
	}

	updated, err := h.users.Update(r.Context(), id, fields)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "user not found")
		return
	}
	h.ok(w, "user updated", updated)
}

func (h *Handler) UpdateUserStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid user id")
		return
	}

	var req UpdateUserStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	updated, err := h.users.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "user not found")
		return
	}
	h.ok(w, "user status updated", updated)
}

func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid user id")
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "user deleted", nil)
}

// SearchUserHandler resolves a user by id or email for the admin panel's
// quick-lookup box.
func (h *Handler) SearchUserHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		h.badRequest(w, "query parameter q is required")
		return
	}

	brief, err := h.users.Search(r.Context(), query)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if brief == nil {
		h.notFound(w, "user not found")
		return
	}
	h.ok(w, "user", brief)
}
