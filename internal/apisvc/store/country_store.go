package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CountryStore struct {
	db *pgxpool.Pool
}

func NewCountryStore(db *pgxpool.Pool) *CountryStore {
	return &CountryStore{db: db}
}

const countryCols = "id, name, code, status, created_at, updated_at"

func scanCountry(row pgx.Row) (*models.Country, error) {
	c := &models.Country{}
	err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CountryStore) List(ctx context.Context) ([]*models.Country, error) {
	rows, err := s.db.Query(ctx, `SELECT `+countryCols+` FROM countries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	defer rows.Close()

	var list []*models.Country
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (s *CountryStore) ListActive(ctx context.Context) ([]*models.Country, error) {
	rows, err := s.db.Query(ctx, `SELECT `+countryCols+` FROM countries WHERE status = 'ACTIVE' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active countries: %w", err)
	}
	defer rows.Close()

	var list []*models.Country
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (s *CountryStore) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	c, err := scanCountry(s.db.QueryRow(ctx, `SELECT `+countryCols+` FROM countries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	return c, nil
}

func (s *CountryStore) Create(ctx context.Context, c *models.Country) (*models.Country, error) {
	created, err := scanCountry(s.db.QueryRow(ctx, `
		INSERT INTO countries (name, code, status)
		VALUES ($1, $2, $3)
		RETURNING `+countryCols+`
	`, c.Name, c.Code, c.Status))
	if err != nil {
		return nil, fmt.Errorf("could not create country: %w", err)
	}
	return created, nil
}

func (s *CountryStore) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Country, error) {
	set, args := buildSet(fields)
	args = append(args, id)

	updated, err := scanCountry(s.db.QueryRow(ctx, `
		UPDATE countries SET `+set+`, updated_at = now()
		WHERE id = $`+itoa(len(args))+`
		RETURNING `+countryCols+`
	`, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not update country: %w", err)
	}
	return updated, nil
}

func (s *CountryStore) UpdateStatus(ctx context.Context, id int64, status string) (*models.Country, error) {
	return s.Update(ctx, id, map[string]interface{}{"status": status})
}

func (s *CountryStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("could not delete country: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
