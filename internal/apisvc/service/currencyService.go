package service

import (
	"context"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/cache"
	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/store"
)

const currencyDropdownKey = "dropdown:currencies"

type CurrencyService struct {
	currencyStore *store.CurrencyStore
	dropdownCache *cache.ViewCache[[]*models.Currency]
}

// NewCurrencyService takes an optional dropdown cache; nil disables
// caching.
func NewCurrencyService(currencyStore *store.CurrencyStore, dropdownCache *cache.ViewCache[[]*models.Currency]) *CurrencyService {
	return &CurrencyService{currencyStore: currencyStore, dropdownCache: dropdownCache}
}

func (s *CurrencyService) List(ctx context.Context) ([]*models.Currency, error) {
	return s.currencyStore.List(ctx)
}

// ListActive backs the dropdown endpoint and is served from cache when
// possible.
func (s *CurrencyService) ListActive(ctx context.Context) ([]*models.Currency, error) {
	if s.dropdownCache != nil {
		if cached, ok := s.dropdownCache.Get(ctx, currencyDropdownKey); ok {
			return *cached, nil
		}
	}

	list, err := s.currencyStore.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.dropdownCache != nil {
		s.dropdownCache.Set(ctx, currencyDropdownKey, &list)
	}
	return list, nil
}

func (s *CurrencyService) GetByID(ctx context.Context, id int64) (*models.Currency, error) {
	return s.currencyStore.GetByID(ctx, id)
}

func (s *CurrencyService) Create(ctx context.Context, c *models.Currency) (*models.Currency, error) {
	if c.Status == "" {
		c.Status = models.StatusActive
	}
	created, err := s.currencyStore.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("currency create failed: %w", err)
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *CurrencyService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Currency, error) {
	updated, err := s.currencyStore.Update(ctx, id, fields)
	if err == nil && updated != nil {
		s.invalidate(ctx)
	}
	return updated, err
}

func (s *CurrencyService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Currency, error) {
	updated, err := s.currencyStore.UpdateStatus(ctx, id, status)
	if err == nil && updated != nil {
		s.invalidate(ctx)
	}
	return updated, err
}

func (s *CurrencyService) Delete(ctx context.Context, id int64) error {
	existing, err := s.currencyStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("currency lookup failed: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("currency not found")
	}
	if _, err := s.currencyStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("currency delete failed: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *CurrencyService) invalidate(ctx context.Context) {
	if s.dropdownCache != nil {
		s.dropdownCache.Delete(ctx, currencyDropdownKey)
	}
}
