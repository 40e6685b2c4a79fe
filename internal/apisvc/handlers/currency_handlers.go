package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/validation"
)

type CreateCurrencyRequest struct {
	Code         string  `json:"code" validate:"required,min=2,max=10"`
	Name         string  `json:"name" validate:"required,max=100"`
	USDRate      float64 `json:"usd_rate" validate:"required,gt=0"`
	DisplayOrder int     `json:"display_order" validate:"omitempty,gte=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdateCurrencyRequest struct {
	Code         *string  `json:"code" validate:"omitempty,min=2,max=10"`
	Name         *string  `json:"name" validate:"omitempty,max=100"`
	USDRate      *float64 `json:"usd_rate" validate:"omitempty,gt=0"`
	DisplayOrder *int     `json:"display_order" validate:"omitempty,gte=0"`
	Status       *string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// fields returns the recognized columns present in the payload; an
// empty map fails the "at least one field" schema rule.
func (r UpdateCurrencyRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.Code != nil {
		f["code"] = *r.Code
	}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.USDRate != nil {
		f["usd_rate"] = decimal.NewFromFloat(*r.USDRate)
	}
	if r.DisplayOrder != nil {
		f["display_order"] = *r.DisplayOrder
	}
	if r.Status != nil {
		f["status"] = *r.Status
	}
	return f
}

type UpdateRowStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

func (h *Handler) ListCurrenciesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.currencies.List(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "currencies", list)
}

func (h *Handler) ActiveCurrenciesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.currencies.ListActive(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "active currencies", list)
}

func (h *Handler) GetCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid currency id")
		return
	}
	c, err := h.currencies.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if c == nil {
		h.notFound(w, "currency not found")
		return
	}
	h.ok(w, "currency", c)
}

func (h *Handler) CreateCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCurrencyRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	created, err := h.currencies.Create(r.Context(), &models.Currency{
		Code:         req.Code,
		Name:         req.Name,
		USDRate:      decimal.NewFromFloat(req.USDRate),
		DisplayOrder: req.DisplayOrder,
		Status:       req.Status,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.created(w, "currency created", created)
}

func (h *Handler) UpdateCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid currency id")
		return
	}

	var req UpdateCurrencyRequest
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

	updated, err := h.currencies.Update(r.Context(), id, fields)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "currency not found")
		return
	}
	h.ok(w, "currency updated", updated)
}

func (h *Handler) UpdateCurrencyStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid currency id")
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

	updated, err := h.currencies.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "currency not found")
		return
	}
	h.ok(w, "currency status updated", updated)
}

func (h *Handler) DeleteCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid currency id")
		return
	}
	if err := h.currencies.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "currency deleted", nil)
}
