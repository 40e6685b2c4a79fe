package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFee maps a fee type (DEPOSIT or WITHDRAW) to a flat fee.
type TransactionFee struct {
	ID        int64           `json:"id"`
	FeeType   string          `json:"fee_type"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
