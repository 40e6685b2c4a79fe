package handlers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finpay/finpay-services/internal/apisvc/service"
	"github.com/finpay/finpay-services/internal/apisvc/validation"
)

type CreateWithdrawRequest struct {
	Amount         float64  `json:"amount" validate:"required,gt=0"`
	UserID         int64    `json:"user_id" validate:"required,gt=0"`
	ChargeAmount   *float64 `json:"charge_amount" validate:"required"`
	FeeType        string   `json:"fee_type" validate:"omitempty,oneof=DEPOSIT WITHDRAW"`
	ToCurrencyID   int64    `json:"to_currency_id" validate:"omitempty,gt=0"`
	FromCurrencyID int64    `json:"from_currency_id" validate:"omitempty,gt=0"`
	ToNetworkID    int64    `json:"to_network_id" validate:"omitempty,gt=0"`
	FromNetworkID  int64    `json:"from_network_id" validate:"omitempty,gt=0"`
	Note           string   `json:"note" validate:"omitempty,max=500"`
}

func (h *Handler) CreateWithdrawHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateWithdrawRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	withdrawal, err := h.withdrawals.CreateWithdraw(r.Context(), service.CreateWithdrawParams{
		UserID:         req.UserID,
		Amount:         decimal.NewFromFloat(req.Amount),
		ChargeAmount:   decimal.NewFromFloat(*req.ChargeAmount),
		FeeType:        req.FeeType,
		ToCurrencyID:   req.ToCurrencyID,
		FromCurrencyID: req.FromCurrencyID,
		ToNetworkID:    req.ToNetworkID,
		FromNetworkID:  req.FromNetworkID,
		Note:           req.Note,
	})
	if err != nil {
		// the ledger distinguishes these two rejections by message
		if strings.Contains(err.Error(), "insufficient balance") ||
			strings.Contains(err.Error(), "pending withdrawal request") {
			h.CreateResponse(w, Response{
				Status:  "error",
				Message: err.Error(),
				Code:    http.StatusUnprocessableEntity,
				Errors:  []string{err.Error()},
			})
			return
		}
		h.serviceError(w, err)
		return
	}

	h.created(w, "withdrawal requested", withdrawal)
}

func (h *Handler) UpdateWithdrawStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid withdrawal id")
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

	withdrawal, err := h.withdrawals.UpdateWithdrawStatus(r.Context(), id, req.Status)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if withdrawal == nil {
		h.notFound(w, "withdrawal not found")
		return
	}

	h.ok(w, "withdrawal status updated", withdrawal)
}

func (h *Handler) ListWithdrawalsHandler(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawals.ListWithdrawals(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "withdrawals", withdrawals)
}

func (h *Handler) GetWithdrawalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid withdrawal id")
		return
	}

	withdrawal, err := h.withdrawals.GetWithdrawal(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if withdrawal == nil {
		h.notFound(w, "withdrawal not found")
		return
	}
	h.ok(w, "withdrawal", withdrawal)
}
