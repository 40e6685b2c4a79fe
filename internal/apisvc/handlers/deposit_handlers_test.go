package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/receipt"
	"github.com/finpay/finpay-services/internal/apisvc/service"
)

// ---- mock implementations ----

type mockDepositService struct {
	createFn       func(service.CreateDepositParams) (*models.Balance, error)
	updateStatusFn func(int64, string) (*models.Balance, error)
	listFn         func(string) ([]*models.Balance, error)
	getFn          func(int64) (*models.Balance, error)
}

func (m *mockDepositService) CreateDeposit(ctx context.Context, p service.CreateDepositParams) (*models.Balance, error) {
	if m.createFn != nil {
		return m.createFn(p)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockDepositService) UpdateDepositStatus(ctx context.Context, id int64, status string) (*models.Balance, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(id, status)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockDepositService) ListDeposits(ctx context.Context, status string) ([]*models.Balance, error) {
	if m.listFn != nil {
		return m.listFn(status)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockDepositService) GetDeposit(ctx context.Context, id int64) (*models.Balance, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func newDepositRouter(m *mockDepositService) *chi.Mux {
	h := NewHandler(Services{Deposits: m})
	r := chi.NewRouter()
	r.Post("/v1/deposits", h.CreateDepositHandler)
	r.Get("/v1/deposits/{id}", h.GetDepositHandler)
	r.Patch("/v1/deposits/{id}/status", h.UpdateDepositStatusHandler)
	return r
}

func doRequest(router http.Handler, method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var rsp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rsp))
	return rsp
}

// ---- tests ----

func TestCreateDepositHandler(t *testing.T) {
	charge := 100.0

	t.Run("passes payload through and returns 201", func(t *testing.T) {
		var got service.CreateDepositParams
		m := &mockDepositService{
			createFn: func(p service.CreateDepositParams) (*models.Balance, error) {
				got = p
				return &models.Balance{
					ID:              1,
					TransactionID:   "DEP-1a2b3c4d",
					TransactionType: models.TxDeposit,
					Status:          models.TxPending,
					Amount:          p.Amount,
					UserID:          p.UserID,
				}, nil
			},
		}

		w := doRequest(newDepositRouter(m), http.MethodPost, "/v1/deposits", map[string]interface{}{
			"amount":        100.0,
			"user_id":       7,
			"charge_amount": charge,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(7), got.UserID)
		assert.True(t, got.Amount.Equal(decimal.NewFromFloat(100)))
		// no status in the payload; the service layer fills in PENDING
		assert.Equal(t, "", got.Status)

		rsp := decodeEnvelope(t, w)
		assert.Equal(t, "success", rsp.Status)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		w := doRequest(newDepositRouter(&mockDepositService{}), http.MethodPost, "/v1/deposits", map[string]interface{}{
			"amount":        0,
			"user_id":       7,
			"charge_amount": charge,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("rejects unknown status value", func(t *testing.T) {
		w := doRequest(newDepositRouter(&mockDepositService{}), http.MethodPost, "/v1/deposits", map[string]interface{}{
			"amount":        50.0,
			"user_id":       7,
			"charge_amount": charge,
			"status":        "APPROVED",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("missing charge_amount is a validation error", func(t *testing.T) {
		w := doRequest(newDepositRouter(&mockDepositService{}), http.MethodPost, "/v1/deposits", map[string]interface{}{
			"amount":  50.0,
			"user_id": 7,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUpdateDepositStatusHandler(t *testing.T) {
	t.Run("updates and returns the row", func(t *testing.T) {
		m := &mockDepositService{
			updateStatusFn: func(id int64, status string) (*models.Balance, error) {
				assert.Equal(t, int64(42), id)
				assert.Equal(t, "COMPLETED", status)
				return &models.Balance{ID: id, Status: status, TransactionType: models.TxDeposit}, nil
			},
		}

		w := doRequest(newDepositRouter(m), http.MethodPatch, "/v1/deposits/42/status", map[string]string{"status": "COMPLETED"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown deposit is a 404", func(t *testing.T) {
		m := &mockDepositService{
			updateStatusFn: func(id int64, status string) (*models.Balance, error) {
				return nil, nil
			},
		}

		w := doRequest(newDepositRouter(m), http.MethodPatch, "/v1/deposits/999/status", map[string]string{"status": "COMPLETED"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid status is rejected before the service is called", func(t *testing.T) {
		called := false
		m := &mockDepositService{
			updateStatusFn: func(id int64, status string) (*models.Balance, error) {
				called = true
				return nil, nil
			},
		}

		w := doRequest(newDepositRouter(m), http.MethodPatch, "/v1/deposits/42/status", map[string]string{"status": "DONE"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.False(t, called)
	})
}

func TestGetDepositHandler(t *testing.T) {
	t.Run("missing id is a 404", func(t *testing.T) {
		m := &mockDepositService{
			getFn: func(id int64) (*models.Balance, error) { return nil, nil },
		}
		w := doRequest(newDepositRouter(m), http.MethodGet, "/v1/deposits/5", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		w := doRequest(newDepositRouter(&mockDepositService{}), http.MethodGet, "/v1/deposits/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type mockReceiptVerifier struct {
	fetchFn func(ref string) (receipt.PaymentInfo, error)
}

func (m *mockReceiptVerifier) FetchPaymentInfo(ref string) (receipt.PaymentInfo, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ref)
	}
	return receipt.PaymentInfo{}, fmt.Errorf("not configured")
}

func newReceiptRouter(m *mockReceiptVerifier) *chi.Mux {
	h := NewHandler(Services{Receipts: m})
	r := chi.NewRouter()
	r.Get("/v1/deposits/receipt", h.VerifyReceiptHandler)
	return r
}

func TestVerifyReceiptHandler(t *testing.T) {
	t.Run("bare reference is passed through", func(t *testing.T) {
		m := &mockReceiptVerifier{
			fetchFn: func(ref string) (receipt.PaymentInfo, error) {
				assert.Equal(t, "FT25146G8PWQ", ref)
				return receipt.PaymentInfo{Receiver: "FINPAY PLC", TotalAmount: 5150.75}, nil
			},
		}

		w := doRequest(newReceiptRouter(m), http.MethodGet, "/v1/deposits/receipt?ref=FT25146G8PWQ", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "FINPAY PLC")
	})

	t.Run("pasted confirmation message yields the FT reference", func(t *testing.T) {
		var got string
		m := &mockReceiptVerifier{
			fetchFn: func(ref string) (receipt.PaymentInfo, error) {
				got = ref
				return receipt.PaymentInfo{Receiver: "FINPAY PLC"}, nil
			},
		}

		pasted := url.QueryEscape("Dear customer, see https://receipts.bank.example/?id=FT25146G8PWQ for your records.")
		w := doRequest(newReceiptRouter(m), http.MethodGet, "/v1/deposits/receipt?ref="+pasted, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "FT25146G8PWQ", got)
	})

	t.Run("missing ref is a 400", func(t *testing.T) {
		w := doRequest(newReceiptRouter(&mockReceiptVerifier{}), http.MethodGet, "/v1/deposits/receipt", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("fetch failure is a 400", func(t *testing.T) {
		m := &mockReceiptVerifier{
			fetchFn: func(ref string) (receipt.PaymentInfo, error) {
				return receipt.PaymentInfo{}, fmt.Errorf("receipt not found")
			},
		}

		w := doRequest(newReceiptRouter(m), http.MethodGet, "/v1/deposits/receipt?ref=FTAAAABBBBCC", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
