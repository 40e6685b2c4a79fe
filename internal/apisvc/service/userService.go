package service

import (
	"context"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/store"
	"golang.org/x/crypto/bcrypt"
)

// UserService struct represents the user service layer
type UserService struct {
	userStore *store.UserStore
}

// NewUserService creates a new UserService instance
func NewUserService(userStore *store.UserStore) *UserService {
	return &UserService{
		userStore: userStore,
	}
}

type CreateUserParams struct {
	FullName string
	Email    string
	Password string
	Role     string
	Status   string
}

func (s *UserService) Create(ctx context.Context, p CreateUserParams) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := p.Role
	if role == "" {
		role = models.RoleUser
	}
	status := p.Status
	if status == "" {
		status = models.UserPending
	}

	created, err := s.userStore.Create(ctx, &models.User{
		FullName:     p.FullName,
		Email:        p.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.userStore.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userStore.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	return s.userStore.Update(ctx, id, fields)
}

func (s *UserService) UpdateStatus(ctx context.Context, id int64, status string) (*models.User, error) {
	return s.userStore.UpdateStatus(ctx, id, status)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	existing, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("user not found")
	}
	if _, err := s.userStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("user delete failed: %w", err)
	}
	return nil
}

func (s *UserService) Search(ctx context.Context, query string) (*models.UserBrief, error) {
	return s.userStore.Search(ctx, query)
}
