package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User roles
const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleUser       = "USER"
)

// User account statuses
const (
	UserPending   = "PENDING"
	UserActive    = "ACTIVE"
	UserFrozen    = "FROZEN"
	UserSuspended = "SUSPENDED"
)

// User represents the users table in the database.
type User struct {
	ID           int64           `json:"id"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Balance      decimal.Decimal `json:"balance"`
	Role         string          `json:"role"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// UserBrief is the minimal projection attached to recent withdraw
// requests on the dashboard.
type UserBrief struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
