package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TxDeposit  = "DEPOSIT"
	TxWithdraw = "WITHDRAW"
)

// Transaction statuses
const (
	TxPending   = "PENDING"
	TxCompleted = "COMPLETED"
	TxFailed    = "FAILED"
	TxCancelled = "CANCELLED"
	TxRefund    = "REFUND"
	TxInReview  = "IN_REVIEW"
)

// ValidTransactionStatus reports whether s is one of the known
// transaction status values.
func ValidTransactionStatus(s string) bool {
	switch s {
	case TxPending, TxCompleted, TxFailed, TxCancelled, TxRefund, TxInReview:
		return true
	}
	return false
}

// ValidTransactionType reports whether t is DEPOSIT or WITHDRAW.
func ValidTransactionType(t string) bool {
	return t == TxDeposit || t == TxWithdraw
}

// Balance is a single row of the transaction ledger: one deposit or
// withdraw attempt with its fee and amount breakdown. after_balance is
// computed once at creation time from the ledger sum.
type Balance struct {
	ID              int64           `json:"id"`
	UID             string          `json:"uid"`            // public row reference
	TransactionID   string          `json:"transaction_id"` // e.g. DEP-1a2b3c4d
	TransactionType string          `json:"transaction_type"`
	Status          string          `json:"status"`
	Amount          decimal.Decimal `json:"amount"`
	FeeType         string          `json:"fee_type,omitempty"`
	FeeAmount       decimal.Decimal `json:"fee_amount"`
	ChargeAmount    decimal.Decimal `json:"charge_amount"`
	AfterFeeAmount  decimal.Decimal `json:"after_fee_amount"`
	AfterBalance    decimal.Decimal `json:"after_balance"`
	ToCurrencyID    sql.NullInt64   `json:"to_currency_id"`
	FromCurrencyID  sql.NullInt64   `json:"from_currency_id"`
	ToNetworkID     sql.NullInt64   `json:"to_network_id"`
	FromNetworkID   sql.NullInt64   `json:"from_network_id"`
	UserID          int64           `json:"user_id"`
	Note            string          `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// WithdrawBrief is a recent withdraw request joined with its owner,
// used by the dashboard.
type WithdrawBrief struct {
	ID            int64           `json:"id"`
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	User          UserBrief       `json:"user"`
}
