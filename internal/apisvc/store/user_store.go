package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

const userCols = "id, full_name, email, password_hash, balance, role, status, created_at, updated_at"

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&u.Balance,
		&u.Role,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserStore) Create(ctx context.Context, u *models.User) (*models.User, error) {
	created, err := scanUser(s.db.QueryRow(ctx, `
		INSERT INTO users (full_name, email, password_hash, balance, role, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userCols+`
	`, u.FullName, u.Email, u.PasswordHash, u.Balance, u.Role, u.Status))
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}
	return created, nil
}

func (s *UserStore) List(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.Query(ctx, `SELECT `+userCols+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var list []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // user not found
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (s *UserStore) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	set, args := buildSet(fields)
	args = append(args, id)

	updated, err := scanUser(s.db.QueryRow(ctx, `
		UPDATE users SET `+set+`, updated_at = now()
		WHERE id = $`+itoa(len(args))+`
		RETURNING `+userCols+`
	`, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	return updated, nil
}

func (s *UserStore) UpdateStatus(ctx context.Context, id int64, status string) (*models.User, error) {
	return s.Update(ctx, id, map[string]interface{}{"status": status})
}

func (s *UserStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("could not delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Search looks a user up by exact id or partial name, for the admin
// panel search box.
func (s *UserStore) Search(ctx context.Context, query string) (*models.UserBrief, error) {
	var u models.UserBrief
	err := s.db.QueryRow(ctx, `
		SELECT id, full_name, email
		FROM users
		WHERE status = 'ACTIVE'
		AND (
			(id::text = $1)
			OR
			(LOWER(full_name) LIKE LOWER($2))
		)
		ORDER BY
			CASE WHEN id::text = $1 THEN 1 ELSE 2 END,
			CASE WHEN LOWER(full_name) = LOWER($3) THEN 1 ELSE 2 END,
			full_name
		LIMIT 1
	`, query, "%"+query+"%", query).Scan(&u.ID, &u.FullName, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("user search error: %w", err)
	}
	return &u, nil
}
