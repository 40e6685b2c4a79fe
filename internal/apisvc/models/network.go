package models

import "time"

// Network is a blockchain or payment rail belonging to a currency,
// used to route deposits and withdrawals.
type Network struct {
	ID         int64     `json:"id"`
	CurrencyID int64     `json:"currency_id"`
	Name       string    `json:"name"` // e.g. TRC20, ERC20, SWIFT
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
