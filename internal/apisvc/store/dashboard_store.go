package store

import (
	"context"
	"fmt"
	"time"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// DashboardStore holds the read-only aggregate queries behind the admin
// dashboard summary.
type DashboardStore struct {
	db *pgxpool.Pool
}

func NewDashboardStore(db *pgxpool.Pool) *DashboardStore {
	return &DashboardStore{db: db}
}

func (s *DashboardStore) CountUsersByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.Query(ctx, `SELECT status, COUNT(*) FROM users GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count users by status: %w", err)
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan user status count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (s *DashboardStore) CountUsersByRole(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, fmt.Errorf("failed to count users by role: %w", err)
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var role string
		var n int64
		if err := rows.Scan(&role, &n); err != nil {
			return nil, fmt.Errorf("failed to scan user role count: %w", err)
		}
		counts[role] = n
	}
	return counts, rows.Err()
}

func (s *DashboardStore) SumUserBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.db.QueryRow(ctx, `SELECT COALESCE(SUM(balance), 0) FROM users`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum user balances: %w", err)
	}
	return total, nil
}

func (s *DashboardStore) SumCompletedDeposits(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM balances
		WHERE transaction_type = 'DEPOSIT' AND status = 'COMPLETED'
	`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum completed deposits: %w", err)
	}
	return total, nil
}

func (s *DashboardStore) CountInReview(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM balances WHERE status = 'IN_REVIEW'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count in-review transactions: %w", err)
	}
	return n, nil
}

// CountRegistrationsOn counts users created on the given day.
func (s *DashboardStore) CountRegistrationsOn(ctx context.Context, day time.Time) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM users
		WHERE created_at >= $1 AND created_at < $2
	`, day, day.AddDate(0, 0, 1)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return n, nil
}

// RecentWithdrawRequests returns the latest withdraw rows with the
// minimal user projection for the dashboard table.
func (s *DashboardStore) RecentWithdrawRequests(ctx context.Context, limit int) ([]*models.WithdrawBrief, error) {
	rows, err := s.db.Query(ctx, `
		SELECT b.id, b.transaction_id, b.amount, b.status, b.created_at,
		       u.id, u.full_name, u.email
		FROM balances b
		JOIN users u ON u.id = b.user_id
		WHERE b.transaction_type = 'WITHDRAW'
		ORDER BY b.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent withdraw requests: %w", err)
	}
	defer rows.Close()

	var list []*models.WithdrawBrief
	for rows.Next() {
		w := &models.WithdrawBrief{}
		if err := rows.Scan(
			&w.ID, &w.TransactionID, &w.Amount, &w.Status, &w.CreatedAt,
			&w.User.ID, &w.User.FullName, &w.User.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan withdraw request: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}
