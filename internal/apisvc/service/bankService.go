package service

import (
	"context"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/store"
)

type BankService struct {
	bankStore *store.BankStore
}

func NewBankService(bankStore *store.BankStore) *BankService {
	return &BankService{bankStore: bankStore}
}

func (s *BankService) List(ctx context.Context) ([]*models.Bank, error) {
	return s.bankStore.List(ctx)
}

func (s *BankService) ListActive(ctx context.Context) ([]*models.Bank, error) {
	return s.bankStore.ListActive(ctx)
}

func (s *BankService) GetByID(ctx context.Context, id int64) (*models.Bank, error) {
	return s.bankStore.GetByID(ctx, id)
}

func (s *BankService) Create(ctx context.Context, b *models.Bank) (*models.Bank, error) {
	if b.Status == "" {
		b.Status = models.StatusActive
	}
	created, err := s.bankStore.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("bank create failed: %w", err)
	}
	return created, nil
}

func (s *BankService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Bank, error) {
	return s.bankStore.Update(ctx, id, fields)
}

func (s *BankService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Bank, error) {
	return s.bankStore.UpdateStatus(ctx, id, status)
}

func (s *BankService) Delete(ctx context.Context, id int64) error {
	existing, err := s.bankStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("bank lookup failed: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("bank not found")
	}
	if _, err := s.bankStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("bank delete failed: %w", err)
	}
	return nil
}

// ---- bank accounts ----

func (s *BankService) ListAccounts(ctx context.Context, bankID int64) ([]*models.BankAccount, error) {
	return s.bankStore.ListAccounts(ctx, bankID)
}

func (s *BankService) GetAccountByID(ctx context.Context, id int64) (*models.BankAccount, error) {
	return s.bankStore.GetAccountByID(ctx, id)
}

func (s *BankService) CreateAccount(ctx context.Context, a *models.BankAccount) (*models.BankAccount, error) {
	if a.Status == "" {
		a.Status = models.StatusActive
	}
	created, err := s.bankStore.CreateAccount(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("bank account create failed: %w", err)
	}
	return created, nil
}

func (s *BankService) UpdateAccount(ctx context.Context, id int64, fields map[string]interface{}) (*models.BankAccount, error) {
	return s.bankStore.UpdateAccount(ctx, id, fields)
}

func (s *BankService) UpdateAccountStatus(ctx context.Context, id int64, status string) (*models.BankAccount, error) {
	return s.bankStore.UpdateAccountStatus(ctx, id, status)
}

func (s *BankService) DeleteAccount(ctx context.Context, id int64) error {
	existing, err := s.bankStore.GetAccountByID(ctx, id)
	if err != nil {
		return fmt.Errorf("bank account lookup failed: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("bank account not found")
	}
	if _, err := s.bankStore.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("bank account delete failed: %w", err)
	}
	return nil
}
