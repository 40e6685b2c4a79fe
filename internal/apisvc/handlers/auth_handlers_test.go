package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"

	"github.com/finpay/finpay-services/internal/apisvc/models"
)

type mockAuthService struct {
	loginFn func(email, password string) (*models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(email, password)
	}
	return nil, fmt.Errorf("not configured")
}

func newAuthRouter(m *mockAuthService) *chi.Mux {
	os.Setenv("JWT_SECRET_KEY", "test-secret")
	h := NewHandler(Services{Auth: m})
	h.InitAuth()
	r := chi.NewRouter()
	r.Post("/v1/auth/login", h.LoginHandler)
	return r
}

func TestLoginHandler(t *testing.T) {
	t.Run("issues a token on valid credentials", func(t *testing.T) {
		m := &mockAuthService{
			loginFn: func(email, password string) (*models.User, error) {
				return &models.User{ID: 1, Email: email, Role: models.RoleAdmin, Status: models.UserActive}, nil
			},
		}

		w := doRequest(newAuthRouter(m), http.MethodPost, "/v1/auth/login", map[string]string{
			"email":    "admin@finpay.app",
			"password": "correct-horse",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "token")
	})

	t.Run("bad credentials are a 401", func(t *testing.T) {
		m := &mockAuthService{
			loginFn: func(email, password string) (*models.User, error) {
				return nil, fmt.Errorf("invalid email or password")
			},
		}

		w := doRequest(newAuthRouter(m), http.MethodPost, "/v1/auth/login", map[string]string{
			"email":    "admin@finpay.app",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("short password never reaches the service", func(t *testing.T) {
		called := false
		m := &mockAuthService{
			loginFn: func(email, password string) (*models.User, error) {
				called = true
				return nil, nil
			},
		}

		w := doRequest(newAuthRouter(m), http.MethodPost, "/v1/auth/login", map[string]string{
			"email":    "admin@finpay.app",
			"password": "short",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.False(t, called)
	})
}
