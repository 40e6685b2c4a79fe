package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NetworkStore struct {
	db *pgxpool.Pool
}

func NewNetworkStore(db *pgxpool.Pool) *NetworkStore {
	return &NetworkStore{db: db}
}

const networkCols = "id, currency_id, name, status, created_at, updated_at"

func scanNetwork(row pgx.Row) (*models.Network, error) {
	n := &models.Network{}
	err := row.Scan(
		&n.ID,
		&n.CurrencyID,
		&n.Name,
		&n.Status,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NetworkStore) List(ctx context.Context) ([]*models.Network, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+networkCols+`
		FROM networks
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}
	defer rows.Close()

	var list []*models.Network
	for rows.Next() {
		n, err := scanNetwork(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan network: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// ListActive returns ACTIVE networks for dropdowns; currencyID zero
// means no currency filter.
func (s *NetworkStore) ListActive(ctx context.Context, currencyID int64) ([]*models.Network, error) {
	query := `
		SELECT ` + networkCols + `
		FROM networks
		WHERE status = 'ACTIVE'
	`
	args := []interface{}{}
	if currencyID > 0 {
		query += ` AND currency_id = $1`
		args = append(args, currencyID)
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active networks: %w", err)
	}
	defer rows.Close()

	var list []*models.Network
	for rows.Next() {
		n, err := scanNetwork(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan network: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (s *NetworkStore) GetByID(ctx context.Context, id int64) (*models.Network, error) {
	n, err := scanNetwork(s.db.QueryRow(ctx, `
		SELECT `+networkCols+`
		FROM networks
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // network not found
		}
		return nil, fmt.Errorf("failed to get network: %w", err)
	}
	return n, nil
}

func (s *NetworkStore) Create(ctx context.Context, n *models.Network) (*models.Network, error) {
	created, err := scanNetwork(s.db.QueryRow(ctx, `
		INSERT INTO networks (currency_id, name, status)
		VALUES ($1, $2, $3)
		RETURNING `+networkCols+`
	`, n.CurrencyID, n.Name, n.Status))
	if err != nil {
		return nil, fmt.Errorf("could not create network: %w", err)
	}
	return created, nil
}

func (s *NetworkStore) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Network, error) {
	set, args := buildSet(fields)
	args = append(args, id)

	updated, err := scanNetwork(s.db.QueryRow(ctx, `
		UPDATE networks SET `+set+`, updated_at = now()
		WHERE id = $`+itoa(len(args))+`
		RETURNING `+networkCols+`
	`, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not update network: %w", err)
	}
	return updated, nil
}

func (s *NetworkStore) UpdateStatus(ctx context.Context, id int64, status string) (*models.Network, error) {
	return s.Update(ctx, id, map[string]interface{}{"status": status})
}

func (s *NetworkStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM networks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("could not delete network: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
