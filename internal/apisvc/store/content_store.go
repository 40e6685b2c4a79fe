package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContentStore struct {
	db *pgxpool.Pool
}

func NewContentStore(db *pgxpool.Pool) *ContentStore {
	return &ContentStore{db: db}
}

const contentCols = "id, slug, title, body, status, created_at, updated_at"

func scanContent(row pgx.Row) (*models.Content, error) {
	c := &models.Content{}
	err := row.Scan(&c.ID, &c.Slug, &c.Title, &c.Body, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContentStore) List(ctx context.Context) ([]*models.Content, error) {
	rows, err := s.db.Query(ctx, `SELECT `+contentCols+` FROM contents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contents: %w", err)
	}
	defer rows.Close()

	var list []*models.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (s *ContentStore) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	c, err := scanContent(s.db.QueryRow(ctx, `SELECT `+contentCols+` FROM contents WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return c, nil
}

func (s *ContentStore) GetBySlug(ctx context.Context, slug string) (*models.Content, error) {
	c, err := scanContent(s.db.QueryRow(ctx, `SELECT `+contentCols+` FROM contents WHERE slug = $1`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content by slug: %w", err)
	}
	return c, nil
}

func (s *ContentStore) Create(ctx context.Context, c *models.Content) (*models.Content, error) {
	created, err := scanContent(s.db.QueryRow(ctx, `
		INSERT INTO contents (slug, title, body, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+contentCols+`
	`, c.Slug, c.Title, c.Body, c.Status))
	if err != nil {
		return nil, fmt.Errorf("could not create content: %w", err)
	}
	return created, nil
}

func (s *ContentStore) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Content, error) {
	set, args := buildSet(fields)
	args = append(args, id)

	updated, err := scanContent(s.db.QueryRow(ctx, `
		UPDATE contents SET `+set+`, updated_at = now()
		WHERE id = $`+itoa(len(args))+`
		RETURNING `+contentCols+`
	`, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not update content: %w", err)
	}
	return updated, nil
}

func (s *ContentStore) UpdateStatus(ctx context.Context, id int64, status string) (*models.Content, error) {
	return s.Update(ctx, id, map[string]interface{}{"status": status})
}

func (s *ContentStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM contents WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("could not delete content: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
