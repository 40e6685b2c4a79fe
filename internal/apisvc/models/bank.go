package models

import (
	"database/sql"
	"time"
)

type Bank struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SwiftCode string    `json:"swift_code,omitempty"`
	Branch    string    `json:"branch,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BankAccount is a receiving account at a bank, optionally assigned to
// a single user for their deposits.
type BankAccount struct {
	ID          int64         `json:"id"`
	BankID      int64         `json:"bank_id"`
	AccountName string        `json:"account_name"`
	AccountNo   string        `json:"account_no"`
	UserID      sql.NullInt64 `json:"user_id"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
