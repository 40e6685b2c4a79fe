package service

import (
	"context"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/store"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userStore *store.UserStore
}

func NewAuthService(userStore *store.UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

// Login checks credentials and returns the user. Suspended and frozen
// accounts cannot sign in.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("login lookup failed: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if user.Status == models.UserFrozen || user.Status == models.UserSuspended {
		return nil, fmt.Errorf("account is %s", user.Status)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return user, nil
}
