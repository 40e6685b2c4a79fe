package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/validation"
)

type CreateContentRequest struct {
	Slug   string `json:"slug" validate:"required,max=150"`
	Title  string `json:"title" validate:"required,max=200"`
	Body   string `json:"body" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdateContentRequest struct {
	Slug   *string `json:"slug" validate:"omitempty,max=150"`
	Title  *string `json:"title" validate:"omitempty,max=200"`
	Body   *string `json:"body" validate:"omitempty"`
	Status *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r UpdateContentRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.Slug != nil {
		f["slug"] = *r.Slug
	}
	if r.Title != nil {
		f["title"] = *r.Title
	}
	if r.Body != nil {
		f["body"] = *r.Body
	}
	if r.Status != nil {
		f["status"] = *r.Status
	}
	return f
}

func (h *Handler) ListContentsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.contents.List(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "contents", list)
}

func (h *Handler) GetContentHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid content id")
		return
	}
	c, err := h.contents.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if c == nil {
		h.notFound(w, "content not found")
		return
	}
	h.ok(w, "content", c)
}

// GetContentBySlugHandler serves the public marketing pages.
func (h *Handler) GetContentBySlugHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	c, err := h.contents.GetBySlug(r.Context(), slug)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if c == nil || c.Status != models.StatusActive {
		h.notFound(w, "content not found")
		return
	}
	h.ok(w, "content", c)
}

func (h *Handler) CreateContentHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateContentRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	created, err := h.contents.Create(r.Context(), &models.Content{
		Slug:   req.Slug,
		Title:  req.Title,
		Body:   req.Body,
		Status: req.Status,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.created(w, "content created", created)
}

func (h *Handler) UpdateContentHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid content id")
		return
	}

	var req UpdateContentRequest
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

	updated, err := h.contents.Update(r.Context(), id, fields)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "content not found")
		return
	}
	h.ok(w, "content updated", updated)
}

func (h *Handler) UpdateContentStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid content id")
		return
	}

	var req UpdateRowStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	updated, err := h.contents.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "content not found")
		return
	}
	h.ok(w, "content status updated", updated)
}

func (h *Handler) DeleteContentHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid content id")
		return
	}
	if err := h.contents.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "content deleted", nil)
}
