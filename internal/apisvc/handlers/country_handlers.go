package handlers

import (
	"net/http"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/validation"
)

type CreateCountryRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Code   string `json:"code" validate:"required,len=2"`
	Status string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdateCountryRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Code   *string `json:"code" validate:"omitempty,len=2"`
	Status *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r UpdateCountryRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.Code != nil {
		f["code"] = *r.Code
	}
	if r.Status != nil {
		f["status"] = *r.Status
	}
	return f
}

func (h *Handler) ListCountriesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.countries.List(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "countries", list)
}

func (h *Handler) ActiveCountriesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.countries.ListActive(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "active countries", list)
}

func (h *Handler) GetCountryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid country id")
		return
	}
	c, err := h.countries.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if c == nil {
		h.notFound(w, "country not found")
		return
	}
	h.ok(w, "country", c)
}

func (h *Handler) CreateCountryHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCountryRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	created, err := h.countries.Create(r.Context(), &models.Country{
		Name:   req.Name,
		Code:   req.Code,
		Status: req.Status,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.created(w, "country created", created)
}

func (h *Handler) UpdateCountryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid country id")
		return
	}

	var req UpdateCountryRequest
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

	updated, err := h.countries.Update(r.Context(), id, fields)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "country not found")
		return
	}
	h.ok(w, "country updated", updated)
}

func (h *Handler) UpdateCountryStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid country id")
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

	updated, err := h.countries.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "country not found")
		return
	}
	h.ok(w, "country status updated", updated)
}

func (h *Handler) DeleteCountryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid country id")
		return
	}
	if err := h.countries.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "country deleted", nil)
}
