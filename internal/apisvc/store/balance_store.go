package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// BalanceStore is the transaction ledger. Every deposit or withdraw
// attempt is one row in balances; a user's spendable balance is the sum
// of their COMPLETED rows.
type BalanceStore struct {
	db *pgxpool.Pool
}

func NewBalanceStore(db *pgxpool.Pool) *BalanceStore {
	return &BalanceStore{db: db}
}

const balanceCols = `id, uid, transaction_id, transaction_type, status, amount,
	fee_type, fee_amount, charge_amount, after_fee_amount, after_balance,
	to_currency_id, from_currency_id, to_network_id, from_network_id,
	user_id, note, created_at, updated_at`

func scanBalance(row pgx.Row) (*models.Balance, error) {
	b := &models.Balance{}
	err := row.Scan(
		&b.ID,
		&b.UID,
		&b.TransactionID,
		&b.TransactionType,
		&b.Status,
		&b.Amount,
		&b.FeeType,
		&b.FeeAmount,
		&b.ChargeAmount,
		&b.AfterFeeAmount,
		&b.AfterBalance,
		&b.ToCurrencyID,
		&b.FromCurrencyID,
		&b.ToNetworkID,
		&b.FromNetworkID,
		&b.UserID,
		&b.Note,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetUserBalance sums the COMPLETED ledger rows for a user: deposits
// add, withdrawals subtract.
func (s *BalanceStore) GetUserBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var totalIn, totalOut decimal.Decimal

	err := s.db.QueryRow(ctx, `
        SELECT
            COALESCE(SUM(after_fee_amount) FILTER (WHERE transaction_type = 'DEPOSIT'), 0),
            COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'WITHDRAW'), 0)
        FROM balances
        WHERE user_id = $1 AND status = 'COMPLETED'
    `, userID).Scan(&totalIn, &totalOut)

	if err != nil {
		return decimal.Zero, err
	}

	balance := totalIn.Sub(totalOut)
	return balance, nil
}

// Create persists one ledger row. Deposits are a single insert with no
// surrounding transaction; funds are not applied at creation.
func (s *BalanceStore) Create(ctx context.Context, b *models.Balance) (*models.Balance, error) {
	created, err := scanBalance(s.db.QueryRow(ctx, `
		INSERT INTO balances (
			uid, transaction_id, transaction_type, status, amount,
			fee_type, fee_amount, charge_amount, after_fee_amount, after_balance,
			to_currency_id, from_currency_id, to_network_id, from_network_id,
			user_id, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+balanceCols+`
	`, b.UID, b.TransactionID, b.TransactionType, b.Status, b.Amount,
		b.FeeType, b.FeeAmount, b.ChargeAmount, b.AfterFeeAmount, b.AfterBalance,
		b.ToCurrencyID, b.FromCurrencyID, b.ToNetworkID, b.FromNetworkID,
		b.UserID, b.Note))
	if err != nil {
		return nil, fmt.Errorf("could not create transaction: %w", err)
	}
	return created, nil
}

func (s *BalanceStore) GetByID(ctx context.Context, id int64) (*models.Balance, error) {
	b, err := scanBalance(s.db.QueryRow(ctx, `
		SELECT `+balanceCols+`
		FROM balances
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // transaction not found
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return b, nil
}

// List returns ledger rows newest first, optionally filtered by
// transaction type and/or status.
func (s *BalanceStore) List(ctx context.Context, txType, status string) ([]*models.Balance, error) {
	query := `SELECT ` + balanceCols + ` FROM balances WHERE 1=1`
	args := []interface{}{}
	if txType != "" {
		args = append(args, txType)
		query += ` AND transaction_type = $` + itoa(len(args))
	}
	if status != "" {
		args = append(args, status)
		query += ` AND status = $` + itoa(len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var list []*models.Balance
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// UpdateStatus is a blind field write: no fee or balance recomputation
// happens on a status transition.
func (s *BalanceStore) UpdateStatus(ctx context.Context, id int64, status string) (*models.Balance, error) {
	b, err := scanBalance(s.db.QueryRow(ctx, `
		UPDATE balances SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+balanceCols+`
	`, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not update transaction status: %w", err)
	}
	return b, nil
}

// CreateWithdraw inserts a WITHDRAW row inside one transaction: the
// user's COMPLETED ledger rows are locked FOR UPDATE, the balance is
// summed and checked, and a second pending withdrawal is rejected.
// The balance snapshot at request time goes into after_balance.
func (s *BalanceStore) CreateWithdraw(ctx context.Context, b *models.Balance) (*models.Balance, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock ledger rows first, then calculate totals
	rows, err := tx.Query(ctx, `
		SELECT transaction_type, amount, after_fee_amount
		FROM balances
		WHERE user_id = $1 AND status = 'COMPLETED'
		FOR UPDATE
	`, b.UserID)
	if err != nil {
		return nil, fmt.Errorf("lock ledger rows: %w", err)
	}

	var totalIn, totalOut decimal.Decimal
	for rows.Next() {
		var ttype string
		var amount, afterFee decimal.Decimal
		if err := rows.Scan(&ttype, &amount, &afterFee); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		if ttype == models.TxDeposit {
			totalIn = totalIn.Add(afterFee)
		} else {
			totalOut = totalOut.Add(amount)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("rows error: %w", err)
	}
	rows.Close()

	balance := totalIn.Sub(totalOut)

	// Check if user has sufficient balance
	if balance.LessThan(b.Amount) {
		return nil, fmt.Errorf("insufficient balance: have %s, need %s", balance.String(), b.Amount.String())
	}

	// Check if user has any pending withdrawal requests
	var pendingCount int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM balances
		WHERE user_id = $1 AND transaction_type = 'WITHDRAW' AND status = 'PENDING'
	`, b.UserID).Scan(&pendingCount)
	if err != nil {
		return nil, fmt.Errorf("check pending requests: %w", err)
	}
	if pendingCount > 0 {
		return nil, fmt.Errorf("user already has a pending withdrawal request")
	}

	b.AfterBalance = balance

	created, err := scanBalance(tx.QueryRow(ctx, `
		INSERT INTO balances (
			uid, transaction_id, transaction_type, status, amount,
			fee_type, fee_amount, charge_amount, after_fee_amount, after_balance,
			to_currency_id, from_currency_id, to_network_id, from_network_id,
			user_id, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+balanceCols+`
	`, b.UID, b.TransactionID, b.TransactionType, b.Status, b.Amount,
		b.FeeType, b.FeeAmount, b.ChargeAmount, b.AfterFeeAmount, b.AfterBalance,
		b.ToCurrencyID, b.FromCurrencyID, b.ToNetworkID, b.FromNetworkID,
		b.UserID, b.Note))
	if err != nil {
		return nil, fmt.Errorf("insert withdrawal request: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return created, nil
}
