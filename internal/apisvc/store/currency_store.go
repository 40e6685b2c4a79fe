package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CurrencyStore struct {
	db *pgxpool.Pool
}

func NewCurrencyStore(db *pgxpool.Pool) *CurrencyStore {
	return &CurrencyStore{db: db}
}

const currencyCols = "id, code, name, usd_rate, display_order, status, created_at, updated_at"

func scanCurrency(row pgx.Row) (*models.Currency, error) {
	c := &models.Currency{}
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.USDRate,
		&c.DisplayOrder,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CurrencyStore) List(ctx context.Context) ([]*models.Currency, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+currencyCols+`
		FROM currencies
		ORDER BY display_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	defer rows.Close()

	var list []*models.Currency
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListActive returns only ACTIVE rows, for dropdown endpoints.
func (s *CurrencyStore) ListActive(ctx context.Context) ([]*models.Currency, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+currencyCols+`
		FROM currencies
		WHERE status = 'ACTIVE'
		ORDER BY display_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active currencies: %w", err)
	}
	defer rows.Close()

	var list []*models.Currency
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (s *CurrencyStore) GetByID(ctx context.Context, id int64) (*models.Currency, error) {
	c, err := scanCurrency(s.db.QueryRow(ctx, `
		SELECT `+currencyCols+`
		FROM currencies
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // currency not found
		}
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	return c, nil
}

func (s *CurrencyStore) Create(ctx context.Context, c *models.Currency) (*models.Currency, error) {
	created, err := scanCurrency(s.db.QueryRow(ctx, `
		INSERT INTO currencies (code, name, usd_rate, display_order, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+currencyCols+`
	`, c.Code, c.Name, c.USDRate, c.DisplayOrder, c.Status))
	if err != nil {
		return nil, fmt.Errorf("could not create currency: %w", err)
	}
	return created, nil
}

// Update applies a partial update built from the recognized fields of
// the request. fields maps column name to new value.
func (s *CurrencyStore) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Currency, error) {
	set, args := buildSet(fields)
	args = append(args, id)

	updated, err := scanCurrency(s.db.QueryRow(ctx, `
		UPDATE currencies SET `+set+`, updated_at = now()
		WHERE id = $`+itoa(len(args))+`
		RETURNING `+currencyCols+`
	`, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not update currency: %w", err)
	}
	return updated, nil
}

func (s *CurrencyStore) UpdateStatus(ctx context.Context, id int64, status string) (*models.Currency, error) {
	return s.Update(ctx, id, map[string]interface{}{"status": status})
}

func (s *CurrencyStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM currencies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("could not delete currency: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
