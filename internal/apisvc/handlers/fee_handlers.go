package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/validation"
)

type CreateFeeRequest struct {
	FeeType string  `json:"fee_type" validate:"required,oneof=DEPOSIT WITHDRAW"`
	Amount  float64 `json:"amount" validate:"gte=0"`
}

type UpdateFeeRequest struct {
	FeeType *string  `json:"fee_type" validate:"omitempty,oneof=DEPOSIT WITHDRAW"`
	Amount  *float64 `json:"amount" validate:"omitempty,gte=0"`
}

func (r UpdateFeeRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.FeeType != nil {
		f["fee_type"] = *r.FeeType
	}
	if r.Amount != nil {
		f["amount"] = decimal.NewFromFloat(*r.Amount)
	}
	return f
}

func (h *Handler) ListFeesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.fees.List(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "transaction fees", list)
}

func (h *Handler) GetFeeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid fee id")
		return
	}
	f, err := h.fees.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if f == nil {
		h.notFound(w, "transaction fee not found")
		return
	}
	h.ok(w, "transaction fee", f)
}

func (h *Handler) CreateFeeHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateFeeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	created, err := h.fees.Create(r.Context(), &models.TransactionFee{
		FeeType: req.FeeType,
		Amount:  decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.created(w, "transaction fee created", created)
}

func (h *Handler) UpdateFeeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid fee id")
		return
	}

	var req UpdateFeeRequest
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

	updated, err := h.fees.Update(r.Context(), id, fields)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "transaction fee not found")
		return
	}
	h.ok(w, "transaction fee updated", updated)
}

func (h *Handler) DeleteFeeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid fee id")
		return
	}
	if err := h.fees.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "transaction fee deleted", nil)
}
