package handlers

import (
	"net/http"
	"strconv"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/validation"
)

type CreateNetworkRequest struct {
	CurrencyID int64  `json:"currency_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,max=100"`
	Status     string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdateNetworkRequest struct {
	CurrencyID *int64  `json:"currency_id" validate:"omitempty,gt=0"`
	Name       *string `json:"name" validate:"omitempty,max=100"`
	Status     *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r UpdateNetworkRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.CurrencyID != nil {
		f["currency_id"] = *r.CurrencyID
	}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.Status != nil {
		f["status"] = *r.Status
	}
	return f
}

func (h *Handler) ListNetworksHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.networks.List(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "networks", list)
}

// ActiveNetworksHandler backs the dropdown; only ACTIVE rows come back,
// optionally scoped to one currency.
func (h *Handler) ActiveNetworksHandler(w http.ResponseWriter, r *http.Request) {
	var currencyID int64
	if raw := r.URL.Query().Get("currency_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.badRequest(w, "invalid currency_id")
			return
		}
		currencyID = id
	}

	list, err := h.networks.ListActive(r.Context(), currencyID)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "active networks", list)
}

func (h *Handler) GetNetworkHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid network id")
		return
	}
	n, err := h.networks.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if n == nil {
		h.notFound(w, "network not found")
		return
	}
	h.ok(w, "network", n)
}

func (h *Handler) CreateNetworkHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateNetworkRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	created, err := h.networks.Create(r.Context(), &models.Network{
		CurrencyID: req.CurrencyID,
		Name:       req.Name,
		Status:     req.Status,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.created(w, "network created", created)
}

func (h *Handler) UpdateNetworkHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid network id")
		return
	}

	var req UpdateNetworkRequest
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

	updated, err := h.networks.Update(r.Context(), id, fields)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "network not found")
		return
	}
	h.ok(w, "network updated", updated)
}

func (h *Handler) UpdateNetworkStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid network id")
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

	updated, err := h.networks.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "network not found")
		return
	}
	h.ok(w, "network status updated", updated)
}

func (h *Handler) DeleteNetworkHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid network id")
		return
	}
	if err := h.networks.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "network deleted", nil)
}
