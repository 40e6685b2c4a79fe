package service

import (
	"context"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/store"
)

type CountryService struct {
	countryStore *store.CountryStore
}

func NewCountryService(countryStore *store.CountryStore) *CountryService {
	return &CountryService{countryStore: countryStore}
}

func (s *CountryService) List(ctx context.Context) ([]*models.Country, error) {
	return s.countryStore.List(ctx)
}

func (s *CountryService) ListActive(ctx context.Context) ([]*models.Country, error) {
	return s.countryStore.ListActive(ctx)
}

func (s *CountryService) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	return s.countryStore.GetByID(ctx, id)
}

func (s *CountryService) Create(ctx context.Context, c *models.Country) (*models.Country, error) {
	if c.Status == "" {
		c.Status = models.StatusActive
	}
	created, err := s.countryStore.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("country create failed: %w", err)
	}
	return created, nil
}

func (s *CountryService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Country, error) {
	return s.countryStore.Update(ctx, id, fields)
}

func (s *CountryService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Country, error) {
	return s.countryStore.UpdateStatus(ctx, id, status)
}

func (s *CountryService) Delete(ctx context.Context, id int64) error {
	existing, err := s.countryStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("country lookup failed: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("country not found")
	}
	if _, err := s.countryStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("country delete failed: %w", err)
	}
	return nil
}
