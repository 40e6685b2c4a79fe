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

type FeeStore struct {
	db *pgxpool.Pool
}

func NewFeeStore(db *pgxpool.Pool) *FeeStore {
	return &FeeStore{db: db}
}

const feeCols = "id, fee_type, amount, created_at, updated_at"

func scanFee(row pgx.Row) (*models.TransactionFee, error) {
	f := &models.TransactionFee{}
	err := row.Scan(&f.ID, &f.FeeType, &f.Amount, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FeeStore) List(ctx context.Context) ([]*models.TransactionFee, error) {
	rows, err := s.db.Query(ctx, `SELECT `+feeCols+` FROM transaction_fees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction fees: %w", err)
	}
	defer rows.Close()

	var list []*models.TransactionFee
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction fee: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (s *FeeStore) GetByID(ctx context.Context, id int64) (*models.TransactionFee, error) {
	f, err := scanFee(s.db.QueryRow(ctx, `SELECT `+feeCols+` FROM transaction_fees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction fee: %w", err)
	}
	return f, nil
}

// GetFlatFee looks up the flat fee for a fee type. Unknown fee types
// resolve to zero, matching how deposits without a fee type behave.
func (s *FeeStore) GetFlatFee(ctx context.Context, feeType string) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := s.db.QueryRow(ctx, `
		SELECT amount FROM transaction_fees WHERE fee_type = $1
	`, feeType).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get flat fee: %w", err)
	}
	return amount, nil
}

func (s *FeeStore) Create(ctx context.Context, f *models.TransactionFee) (*models.TransactionFee, error) {
	created, err := scanFee(s.db.QueryRow(ctx, `
		INSERT INTO transaction_fees (fee_type, amount)
		VALUES ($1, $2)
		RETURNING `+feeCols+`
	`, f.FeeType, f.Amount))
	if err != nil {
		return nil, fmt.Errorf("could not create transaction fee: %w", err)
	}
	return created, nil
}

func (s *FeeStore) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.TransactionFee, error) {
	set, args := buildSet(fields)
	args = append(args, id)

	updated, err := scanFee(s.db.QueryRow(ctx, `
		UPDATE transaction_fees SET `+set+`, updated_at = now()
		WHERE id = $`+itoa(len(args))+`
		RETURNING `+feeCols+`
	`, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not update transaction fee: %w", err)
	}
	return updated, nil
}

func (s *FeeStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM transaction_fees WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("could not delete transaction fee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
