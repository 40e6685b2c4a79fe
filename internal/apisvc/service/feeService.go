package service

import (
	"context"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/store"
)

type FeeService struct {
	feeStore *store.FeeStore
}

func NewFeeService(feeStore *store.FeeStore) *FeeService {
	return &FeeService{feeStore: feeStore}
}

func (s *FeeService) List(ctx context.Context) ([]*models.TransactionFee, error) {
	return s.feeStore.List(ctx)
}

func (s *FeeService) GetByID(ctx context.Context, id int64) (*models.TransactionFee, error) {
	return s.feeStore.GetByID(ctx, id)
}

func (s *FeeService) Create(ctx context.Context, f *models.TransactionFee) (*models.TransactionFee, error) {
	if !models.ValidTransactionType(f.FeeType) {
		return nil, fmt.Errorf("invalid fee type: %s", f.FeeType)
	}
	created, err := s.feeStore.Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("transaction fee create failed: %w", err)
	}
	return created, nil
}

func (s *FeeService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.TransactionFee, error) {
	return s.feeStore.Update(ctx, id, fields)
}

func (s *FeeService) Delete(ctx context.Context, id int64) error {
	existing, err := s.feeStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("transaction fee lookup failed: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("transaction fee not found")
	}
	if _, err := s.feeStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("transaction fee delete failed: %w", err)
	}
	return nil
}
