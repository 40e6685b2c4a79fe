package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BankStore struct {
	db *pgxpool.Pool
}

func NewBankStore(db *pgxpool.Pool) *BankStore {
	return &BankStore{db: db}
}

const bankCols = "id, name, swift_code, branch, status, created_at, updated_at"
const bankAccountCols = "id, bank_id, account_name, account_no, user_id, status, created_at, updated_at"

func scanBank(row pgx.Row) (*models.Bank, error) {
	b := &models.Bank{}
	err := row.Scan(&b.ID, &b.Name, &b.SwiftCode, &b.Branch, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func scanBankAccount(row pgx.Row) (*models.BankAccount, error) {
	a := &models.BankAccount{}
	err := row.Scan(&a.ID, &a.BankID, &a.AccountName, &a.AccountNo, &a.UserID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *BankStore) List(ctx context.Context) ([]*models.Bank, error) {
	rows, err := s.db.Query(ctx, `SELECT `+bankCols+` FROM banks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	defer rows.Close()

	var list []*models.Bank
	for rows.Next() {
		b, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (s *BankStore) ListActive(ctx context.Context) ([]*models.Bank, error) {
	rows, err := s.db.Query(ctx, `SELECT `+bankCols+` FROM banks WHERE status = 'ACTIVE' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active banks: %w", err)
	}
	defer rows.Close()

	var list []*models.Bank
	for rows.Next() {
		b, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (s *BankStore) GetByID(ctx context.Context, id int64) (*models.Bank, error) {
	b, err := scanBank(s.db.QueryRow(ctx, `SELECT `+bankCols+` FROM banks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	return b, nil
}

func (s *BankStore) Create(ctx context.Context, b *models.Bank) (*models.Bank, error) {
	created, err := scanBank(s.db.QueryRow(ctx, `
		INSERT INTO banks (name, swift_code, branch, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+bankCols+`
	`, b.Name, b.SwiftCode, b.Branch, b.Status))
	if err != nil {
		return nil, fmt.Errorf("could not create bank: %w", err)
	}
	return created, nil
}

func (s *BankStore) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Bank, error) {
	set, args := buildSet(fields)
	args = append(args, id)

	updated, err := scanBank(s.db.QueryRow(ctx, `
		UPDATE banks SET `+set+`, updated_at = now()
		WHERE id = $`+itoa(len(args))+`
		RETURNING `+bankCols+`
	`, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not update bank: %w", err)
	}
	return updated, nil
}

func (s *BankStore) UpdateStatus(ctx context.Context, id int64, status string) (*models.Bank, error) {
	return s.Update(ctx, id, map[string]interface{}{"status": status})
}

func (s *BankStore) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM banks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("could not delete bank: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ---- bank accounts ----

func (s *BankStore) ListAccounts(ctx context.Context, bankID int64) ([]*models.BankAccount, error) {
	query := `SELECT ` + bankAccountCols + ` FROM bank_accounts`
	args := []interface{}{}
	if bankID > 0 {
		query += ` WHERE bank_id = $1`
		args = append(args, bankID)
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	defer rows.Close()

	var list []*models.BankAccount
	for rows.Next() {
		a, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (s *BankStore) GetAccountByID(ctx context.Context, id int64) (*models.BankAccount, error) {
	a, err := scanBankAccount(s.db.QueryRow(ctx, `SELECT `+bankAccountCols+` FROM bank_accounts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bank account: %w", err)
	}
	return a, nil
}

func (s *BankStore) CreateAccount(ctx context.Context, a *models.BankAccount) (*models.BankAccount, error) {
	created, err := scanBankAccount(s.db.QueryRow(ctx, `
		INSERT INTO bank_accounts (bank_id, account_name, account_no, user_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+bankAccountCols+`
	`, a.BankID, a.AccountName, a.AccountNo, a.UserID, a.Status))
	if err != nil {
		return nil, fmt.Errorf("could not create bank account: %w", err)
	}
	return created, nil
}

func (s *BankStore) UpdateAccount(ctx context.Context, id int64, fields map[string]interface{}) (*models.BankAccount, error) {
	set, args := buildSet(fields)
	args = append(args, id)

	updated, err := scanBankAccount(s.db.QueryRow(ctx, `
		UPDATE bank_accounts SET `+set+`, updated_at = now()
		WHERE id = $`+itoa(len(args))+`
		RETURNING `+bankAccountCols+`
	`, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not update bank account: %w", err)
	}
	return updated, nil
}

func (s *BankStore) UpdateAccountStatus(ctx context.Context, id int64, status string) (*models.BankAccount, error) {
	return s.UpdateAccount(ctx, id, map[string]interface{}{"status": status})
}

func (s *BankStore) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("could not delete bank account: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
