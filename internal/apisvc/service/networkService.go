package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/finpay/finpay-services/internal/apisvc/cache"
	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/store"
)

func networkDropdownKey(currencyID int64) string {
	return "dropdown:networks:" + strconv.FormatInt(currencyID, 10)
}

type NetworkService struct {
	networkStore  *store.NetworkStore
	dropdownCache *cache.ViewCache[[]*models.Network]
}

// NewNetworkService takes an optional dropdown cache; nil disables
// caching.
func NewNetworkService(networkStore *store.NetworkStore, dropdownCache *cache.ViewCache[[]*models.Network]) *NetworkService {
	return &NetworkService{networkStore: networkStore, dropdownCache: dropdownCache}
}

func (s *NetworkService) List(ctx context.Context) ([]*models.Network, error) {
	return s.networkStore.List(ctx)
}

// ListActive backs the dropdown endpoint; currencyID zero means all
// currencies. Served from cache when possible.
func (s *NetworkService) ListActive(ctx context.Context, currencyID int64) ([]*models.Network, error) {
	key := networkDropdownKey(currencyID)
	if s.dropdownCache != nil {
		if cached, ok := s.dropdownCache.Get(ctx, key); ok {
			return *cached, nil
		}
	}

	list, err := s.networkStore.ListActive(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	if s.dropdownCache != nil {
		s.dropdownCache.Set(ctx, key, &list)
	}
	return list, nil
}

func (s *NetworkService) GetByID(ctx context.Context, id int64) (*models.Network, error) {
	return s.networkStore.GetByID(ctx, id)
}

func (s *NetworkService) Create(ctx context.Context, n *models.Network) (*models.Network, error) {
	if n.Status == "" {
		n.Status = models.StatusActive
	}
	created, err := s.networkStore.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("network create failed: %w", err)
	}
	s.invalidate(ctx, created.CurrencyID)
	return created, nil
}

func (s *NetworkService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Network, error) {
	updated, err := s.networkStore.Update(ctx, id, fields)
	if err == nil && updated != nil {
		s.invalidate(ctx, updated.CurrencyID)
	}
	return updated, err
}

func (s *NetworkService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Network, error) {
	updated, err := s.networkStore.UpdateStatus(ctx, id, status)
	if err == nil && updated != nil {
		s.invalidate(ctx, updated.CurrencyID)
	}
	return updated, err
}

func (s *NetworkService) Delete(ctx context.Context, id int64) error {
	existing, err := s.networkStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("network lookup failed: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("network not found")
	}
	if _, err := s.networkStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("network delete failed: %w", err)
	}
	s.invalidate(ctx, existing.CurrencyID)
	return nil
}

// invalidate drops both the per-currency dropdown and the all-currencies
// one.
func (s *NetworkService) invalidate(ctx context.Context, currencyID int64) {
	if s.dropdownCache == nil {
		return
	}
	s.dropdownCache.Delete(ctx, networkDropdownKey(currencyID))
	s.dropdownCache.Delete(ctx, networkDropdownKey(0))
}
