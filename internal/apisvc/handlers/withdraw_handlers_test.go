package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/service"
)

type mockWithdrawService struct {
	createFn       func(service.CreateWithdrawParams) (*models.Balance, error)
	updateStatusFn func(int64, string) (*models.Balance, error)
	listFn         func(string) ([]*models.Balance, error)
	getFn          func(int64) (*models.Balance, error)
}

func (m *mockWithdrawService) CreateWithdraw(ctx context.Context, p service.CreateWithdrawParams) (*models.Balance, error) {
	if m.createFn != nil {
		return m.createFn(p)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockWithdrawService) UpdateWithdrawStatus(ctx context.Context, id int64, status string) (*models.Balance, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(id, status)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockWithdrawService) ListWithdrawals(ctx context.Context, status string) ([]*models.Balance, error) {
	if m.listFn != nil {
		return m.listFn(status)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockWithdrawService) GetWithdrawal(ctx context.Context, id int64) (*models.Balance, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, fmt.Errorf("not configured")
}

func newWithdrawRouter(m *mockWithdrawService) *chi.Mux {
	h := NewHandler(Services{Withdrawals: m})
	r := chi.NewRouter()
	r.Post("/v1/withdrawals", h.CreateWithdrawHandler)
	r.Patch("/v1/withdrawals/{id}/status", h.UpdateWithdrawStatusHandler)
	return r
}

func TestCreateWithdrawHandler(t *testing.T) {
	charge := 0.0

	t.Run("accepted request returns 201", func(t *testing.T) {
		m := &mockWithdrawService{
			createFn: func(p service.CreateWithdrawParams) (*models.Balance, error) {
				return &models.Balance{
					ID:              1,
					TransactionID:   "WD-9f8e7d6c",
					TransactionType: models.TxWithdraw,
					Status:          models.TxPending,
					Amount:          p.Amount,
					UserID:          p.UserID,
				}, nil
			},
		}

		w := doRequest(newWithdrawRouter(m), http.MethodPost, "/v1/withdrawals", map[string]interface{}{
			"amount":        50.0,
			"user_id":       3,
			"charge_amount": charge,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "WD-")
	})

	t.Run("insufficient balance is a 422", func(t *testing.T) {
		m := &mockWithdrawService{
			createFn: func(p service.CreateWithdrawParams) (*models.Balance, error) {
				return nil, fmt.Errorf("insufficient balance: have 10, need 50")
			},
		}

		w := doRequest(newWithdrawRouter(m), http.MethodPost, "/v1/withdrawals", map[string]interface{}{
			"amount":        50.0,
			"user_id":       3,
			"charge_amount": charge,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "insufficient balance")
	})

	t.Run("duplicate pending request is a 422", func(t *testing.T) {
		m := &mockWithdrawService{
			createFn: func(p service.CreateWithdrawParams) (*models.Balance, error) {
				return nil, fmt.Errorf("user already has a pending withdrawal request")
			},
		}

		w := doRequest(newWithdrawRouter(m), http.MethodPost, "/v1/withdrawals", map[string]interface{}{
			"amount":        50.0,
			"user_id":       3,
			"charge_amount": charge,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUpdateWithdrawStatusHandler(t *testing.T) {
	t.Run("unknown withdrawal is a 404", func(t *testing.T) {
		m := &mockWithdrawService{
			updateStatusFn: func(id int64, status string) (*models.Balance, error) { return nil, nil },
		}

		w := doRequest(newWithdrawRouter(m), http.MethodPatch, "/v1/withdrawals/123/status", map[string]string{"status": "COMPLETED"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
