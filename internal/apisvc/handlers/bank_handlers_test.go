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

type mockBankService struct {
	listFn         func() ([]*models.Bank, error)
	listActiveFn   func() ([]*models.Bank, error)
	getFn          func(int64) (*models.Bank, error)
	createFn       func(*models.Bank) (*models.Bank, error)
	updateFn       func(int64, map[string]interface{}) (*models.Bank, error)
	updateStatusFn func(int64, string) (*models.Bank, error)
	deleteFn       func(int64) error

	listAccountsFn        func(int64) ([]*models.BankAccount, error)
	getAccountFn          func(int64) (*models.BankAccount, error)
	createAccountFn       func(*models.BankAccount) (*models.BankAccount, error)
	updateAccountFn       func(int64, map[string]interface{}) (*models.BankAccount, error)
	updateAccountStatusFn func(int64, string) (*models.BankAccount, error)
	deleteAccountFn       func(int64) error
}

func (m *mockBankService) List(ctx context.Context) ([]*models.Bank, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBankService) ListActive(ctx context.Context) ([]*models.Bank, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn()
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBankService) GetByID(ctx context.Context, id int64) (*models.Bank, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBankService) Create(ctx context.Context, b *models.Bank) (*models.Bank, error) {
	if m.createFn != nil {
		return m.createFn(b)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBankService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Bank, error) {
	if m.updateFn != nil {
		return m.updateFn(id, fields)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBankService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Bank, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(id, status)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBankService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return fmt.Errorf("not configured")
}

func (m *mockBankService) ListAccounts(ctx context.Context, bankID int64) ([]*models.BankAccount, error) {
	if m.listAccountsFn != nil {
		return m.listAccountsFn(bankID)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBankService) GetAccountByID(ctx context.Context, id int64) (*models.BankAccount, error) {
	if m.getAccountFn != nil {
		return m.getAccountFn(id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBankService) CreateAccount(ctx context.Context, a *models.BankAccount) (*models.BankAccount, error) {
	if m.createAccountFn != nil {
		return m.createAccountFn(a)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBankService) UpdateAccount(ctx context.Context, id int64, fields map[string]interface{}) (*models.BankAccount, error) {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(id, fields)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBankService) UpdateAccountStatus(ctx context.Context, id int64, status string) (*models.BankAccount, error) {
	if m.updateAccountStatusFn != nil {
		return m.updateAccountStatusFn(id, status)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockBankService) DeleteAccount(ctx context.Context, id int64) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(id)
	}
	return fmt.Errorf("not configured")
}

func newBankRouter(m *mockBankService) *chi.Mux {
	h := NewHandler(Services{Banks: m})
	r := chi.NewRouter()
	r.Patch("/v1/banks/{id}/status", h.UpdateBankStatusHandler)
	r.Patch("/v1/bank-accounts/{id}/status", h.UpdateBankAccountStatusHandler)
	return r
}

func TestUpdateBankAccountStatusHandler(t *testing.T) {
	t.Run("updates and returns the account", func(t *testing.T) {
		m := &mockBankService{
			updateAccountStatusFn: func(id int64, status string) (*models.BankAccount, error) {
				assert.Equal(t, int64(5), id)
				assert.Equal(t, models.StatusInactive, status)
				return &models.BankAccount{ID: id, Status: status}, nil
			},
		}

		w := doRequest(newBankRouter(m), http.MethodPatch, "/v1/bank-accounts/5/status", map[string]string{"status": "INACTIVE"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "INACTIVE")
	})

	t.Run("unknown account is a 404", func(t *testing.T) {
		m := &mockBankService{
			updateAccountStatusFn: func(id int64, status string) (*models.BankAccount, error) { return nil, nil },
		}

		w := doRequest(newBankRouter(m), http.MethodPatch, "/v1/bank-accounts/99/status", map[string]string{"status": "ACTIVE"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown status value is rejected", func(t *testing.T) {
		called := false
		m := &mockBankService{
			updateAccountStatusFn: func(id int64, status string) (*models.BankAccount, error) {
				called = true
				return nil, nil
			},
		}

		w := doRequest(newBankRouter(m), http.MethodPatch, "/v1/bank-accounts/5/status", map[string]string{"status": "DISABLED"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.False(t, called)
	})
}
