package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"

	"github.com/finpay/finpay-services/internal/apisvc/models"
)

type mockCurrencyService struct {
	listFn         func() ([]*models.Currency, error)
	listActiveFn   func() ([]*models.Currency, error)
	getFn          func(int64) (*models.Currency, error)
	createFn       func(*models.Currency) (*models.Currency, error)
	updateFn       func(int64, map[string]interface{}) (*models.Currency, error)
	updateStatusFn func(int64, string) (*models.Currency, error)
	deleteFn       func(int64) error
}

func (m *mockCurrencyService) List(ctx context.Context) ([]*models.Currency, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockCurrencyService) ListActive(ctx context.Context) ([]*models.Currency, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn()
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockCurrencyService) GetByID(ctx context.Context, id int64) (*models.Currency, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockCurrencyService) Create(ctx context.Context, c *models.Currency) (*models.Currency, error) {
	if m.createFn != nil {
		return m.createFn(c)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockCurrencyService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Currency, error) {
	if m.updateFn != nil {
		return m.updateFn(id, fields)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockCurrencyService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Currency, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(id, status)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockCurrencyService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return fmt.Errorf("not configured")
}

func newCurrencyRouter(m *mockCurrencyService) *chi.Mux {
	h := NewHandler(Services{Currencies: m})
	r := chi.NewRouter()
	r.Get("/v1/currencies", h.ListCurrenciesHandler)
	r.Get("/v1/currencies/dropdown/active", h.ActiveCurrenciesHandler)
	r.Put("/v1/currencies/{id}", h.UpdateCurrencyHandler)
	r.Delete("/v1/currencies/{id}", h.DeleteCurrencyHandler)
	return r
}

func TestActiveCurrenciesHandler(t *testing.T) {
	// the dropdown must go through ListActive, never the full list
	listCalled := false
	m := &mockCurrencyService{
		listFn: func() ([]*models.Currency, error) {
			listCalled = true
			return nil, nil
		},
		listActiveFn: func() ([]*models.Currency, error) {
			return []*models.Currency{
				{ID: 1, Code: "USD", Status: models.StatusActive},
				{ID: 2, Code: "USDT", Status: models.StatusActive},
			}, nil
		},
	}

	w := doRequest(newCurrencyRouter(m), http.MethodGet, "/v1/currencies/dropdown/active", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, listCalled)
	assert.Contains(t, w.Body.String(), "USDT")
}

func TestUpdateCurrencyHandler(t *testing.T) {
	t.Run("empty body is a validation error", func(t *testing.T) {
		called := false
		m := &mockCurrencyService{
			updateFn: func(id int64, fields map[string]interface{}) (*models.Currency, error) {
				called = true
				return nil, nil
			},
		}

		w := doRequest(newCurrencyRouter(m), http.MethodPut, "/v1/currencies/3", map[string]interface{}{})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.False(t, called)
	})

	t.Run("unrecognized fields alone are a validation error", func(t *testing.T) {
		m := &mockCurrencyService{}
		w := doRequest(newCurrencyRouter(m), http.MethodPut, "/v1/currencies/3", map[string]interface{}{"nickname": "dollar"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("partial update passes only the provided fields", func(t *testing.T) {
		m := &mockCurrencyService{
			updateFn: func(id int64, fields map[string]interface{}) (*models.Currency, error) {
				assert.Equal(t, int64(3), id)
				assert.Len(t, fields, 1)
				assert.Contains(t, fields, "name")
				return &models.Currency{ID: id, Name: "US Dollar"}, nil
			},
		}

		w := doRequest(newCurrencyRouter(m), http.MethodPut, "/v1/currencies/3", map[string]interface{}{"name": "US Dollar"})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestDeleteCurrencyHandler(t *testing.T) {
	t.Run("missing row maps to 404", func(t *testing.T) {
		m := &mockCurrencyService{
			deleteFn: func(id int64) error { return fmt.Errorf("currency not found") },
		}
		w := doRequest(newCurrencyRouter(m), http.MethodDelete, "/v1/currencies/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("other failures map to 400", func(t *testing.T) {
		m := &mockCurrencyService{
			deleteFn: func(id int64) error { return fmt.Errorf("currency delete failed: constraint violation") },
		}
		w := doRequest(newCurrencyRouter(m), http.MethodDelete, "/v1/currencies/1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
