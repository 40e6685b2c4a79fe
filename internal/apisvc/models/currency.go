package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row statuses shared by the reference entities (currencies, networks,
// banks, countries, contents).
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type Currency struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code"` // e.g. USD, ETB, USDT
	Name         string          `json:"name"`
	USDRate      decimal.Decimal `json:"usd_rate"`
	DisplayOrder int             `json:"display_order"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
