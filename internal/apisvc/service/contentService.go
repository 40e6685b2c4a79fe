package service

import (
	"context"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/store"
)

type ContentService struct {
	contentStore *store.ContentStore
}

func NewContentService(contentStore *store.ContentStore) *ContentService {
	return &ContentService{contentStore: contentStore}
}

func (s *ContentService) List(ctx context.Context) ([]*models.Content, error) {
	return s.contentStore.List(ctx)
}

func (s *ContentService) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	return s.contentStore.GetByID(ctx, id)
}

func (s *ContentService) GetBySlug(ctx context.Context, slug string) (*models.Content, error) {
	return s.contentStore.GetBySlug(ctx, slug)
}

func (s *ContentService) Create(ctx context.Context, c *models.Content) (*models.Content, error) {
	if c.Status == "" {
		c.Status = models.StatusActive
	}
	created, err := s.contentStore.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("content create failed: %w", err)
	}
	return created, nil
}

func (s *ContentService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Content, error) {
	return s.contentStore.Update(ctx, id, fields)
}

func (s *ContentService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Content, error) {
	return s.contentStore.UpdateStatus(ctx, id, status)
}

func (s *ContentService) Delete(ctx context.Context, id int64) error {
	existing, err := s.contentStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("content lookup failed: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("content not found")
	}
	if _, err := s.contentStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("content delete failed: %w", err)
	}
	return nil
}
