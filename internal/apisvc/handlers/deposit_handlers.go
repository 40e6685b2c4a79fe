package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"

	"github.com/finpay/finpay-services/internal/apisvc/receipt"
	"github.com/finpay/finpay-services/internal/apisvc/service"
	"github.com/finpay/finpay-services/internal/apisvc/validation"
)

type CreateDepositRequest struct {
	Amount         float64  `json:"amount" validate:"required,gt=0"`
	UserID         int64    `json:"user_id" validate:"required,gt=0"`
	ChargeAmount   *float64 `json:"charge_amount" validate:"required"`
	FeeType        string   `json:"fee_type" validate:"omitempty,oneof=DEPOSIT WITHDRAW"`
	Status         string   `json:"status" validate:"omitempty,oneof=PENDING COMPLETED FAILED CANCELLED REFUND IN_REVIEW"`
	ToCurrencyID   int64    `json:"to_currency_id" validate:"omitempty,gt=0"`
	FromCurrencyID int64    `json:"from_currency_id" validate:"omitempty,gt=0"`
	ToNetworkID    int64    `json:"to_network_id" validate:"omitempty,gt=0"`
	FromNetworkID  int64    `json:"from_network_id" validate:"omitempty,gt=0"`
	Note           string   `json:"note" validate:"omitempty,max=500"`
}

type UpdateTransactionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING COMPLETED FAILED CANCELLED REFUND IN_REVIEW"`
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) CreateDepositHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateDepositRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	deposit, err := h.deposits.CreateDeposit(r.Context(), service.CreateDepositParams{
		UserID:         req.UserID,
		Amount:         decimal.NewFromFloat(req.Amount),
		ChargeAmount:   decimal.NewFromFloat(*req.ChargeAmount),
		FeeType:        req.FeeType,
		Status:         req.Status,
		ToCurrencyID:   req.ToCurrencyID,
		FromCurrencyID: req.FromCurrencyID,
		ToNetworkID:    req.ToNetworkID,
		FromNetworkID:  req.FromNetworkID,
		Note:           req.Note,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.created(w, "deposit created", deposit)
}

func (h *Handler) UpdateDepositStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid deposit id")
		return
	}

	var req UpdateTransactionStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	deposit, err := h.deposits.UpdateDepositStatus(r.Context(), id, req.Status)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if deposit == nil {
		h.notFound(w, "deposit not found")
		return
	}

	h.ok(w, "deposit status updated", deposit)
}

func (h *Handler) ListDepositsHandler(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.deposits.ListDeposits(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "deposits", deposits)
}

func (h *Handler) GetDepositHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid deposit id")
		return
	}

	deposit, err := h.deposits.GetDeposit(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if deposit == nil {
		h.notFound(w, "deposit not found")
		return
	}
	h.ok(w, "deposit", deposit)
}

// VerifyReceiptHandler fetches the bank's PDF receipt for a reference
// number so an admin can compare it with a claimed bank deposit. ref can
// be the bare FT reference or a pasted confirmation message containing
// the bank's receipt URL.
func (h *Handler) VerifyReceiptHandler(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("ref")
	if ref == "" {
		h.badRequest(w, "ref query parameter is required")
		return
	}

	if extracted, err := receipt.ExtractReferenceNumber(ref); err == nil {
		ref = extracted
	}

	info, err := h.receipts.FetchPaymentInfo(ref)
	if err != nil {
		h.badRequest(w, "reference number not found or invalid")
		return
	}

	h.ok(w, "receipt", info)
}
