package handlers

import (
	"context"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/receipt"
	"github.com/finpay/finpay-services/internal/apisvc/service"
)

// The handler layer talks to the services through these interfaces so
// tests can swap in mocks.

type DepositService interface {
	CreateDeposit(ctx context.Context, p service.CreateDepositParams) (*models.Balance, error)
	UpdateDepositStatus(ctx context.Context, id int64, status string) (*models.Balance, error)
	ListDeposits(ctx context.Context, status string) ([]*models.Balance, error)
	GetDeposit(ctx context.Context, id int64) (*models.Balance, error)
}

type WithdrawService interface {
	CreateWithdraw(ctx context.Context, p service.CreateWithdrawParams) (*models.Balance, error)
	UpdateWithdrawStatus(ctx context.Context, id int64, status string) (*models.Balance, error)
	ListWithdrawals(ctx context.Context, status string) ([]*models.Balance, error)
	GetWithdrawal(ctx context.Context, id int64) (*models.Balance, error)
}

type CurrencyService interface {
	List(ctx context.Context) ([]*models.Currency, error)
	ListActive(ctx context.Context) ([]*models.Currency, error)
	GetByID(ctx context.Context, id int64) (*models.Currency, error)
	Create(ctx context.Context, c *models.Currency) (*models.Currency, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Currency, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Currency, error)
	Delete(ctx context.Context, id int64) error
}

type NetworkService interface {
	List(ctx context.Context) ([]*models.Network, error)
	ListActive(ctx context.Context, currencyID int64) ([]*models.Network, error)
	GetByID(ctx context.Context, id int64) (*models.Network, error)
	Create(ctx context.Context, n *models.Network) (*models.Network, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Network, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Network, error)
	Delete(ctx context.Context, id int64) error
}

type BankService interface {
	List(ctx context.Context) ([]*models.Bank, error)
	ListActive(ctx context.Context) ([]*models.Bank, error)
	GetByID(ctx context.Context, id int64) (*models.Bank, error)
	Create(ctx context.Context, b *models.Bank) (*models.Bank, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Bank, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Bank, error)
	Delete(ctx context.Context, id int64) error

	ListAccounts(ctx context.Context, bankID int64) ([]*models.BankAccount, error)
	GetAccountByID(ctx context.Context, id int64) (*models.BankAccount, error)
	CreateAccount(ctx context.Context, a *models.BankAccount) (*models.BankAccount, error)
	UpdateAccount(ctx context.Context, id int64, fields map[string]interface{}) (*models.BankAccount, error)
	UpdateAccountStatus(ctx context.Context, id int64, status string) (*models.BankAccount, error)
	DeleteAccount(ctx context.Context, id int64) error
}

type CountryService interface {
	List(ctx context.Context) ([]*models.Country, error)
	ListActive(ctx context.Context) ([]*models.Country, error)
	GetByID(ctx context.Context, id int64) (*models.Country, error)
	Create(ctx context.Context, c *models.Country) (*models.Country, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Country, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Country, error)
	Delete(ctx context.Context, id int64) error
}

type ContentService interface {
	List(ctx context.Context) ([]*models.Content, error)
	GetByID(ctx context.Context, id int64) (*models.Content, error)
	GetBySlug(ctx context.Context, slug string) (*models.Content, error)
	Create(ctx context.Context, c *models.Content) (*models.Content, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Content, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Content, error)
	Delete(ctx context.Context, id int64) error
}

type FeeService interface {
	List(ctx context.Context) ([]*models.TransactionFee, error)
	GetByID(ctx context.Context, id int64) (*models.TransactionFee, error)
	Create(ctx context.Context, f *models.TransactionFee) (*models.TransactionFee, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.TransactionFee, error)
	Delete(ctx context.Context, id int64) error
}

type UserService interface {
	Create(ctx context.Context, p service.CreateUserParams) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) (*models.UserBrief, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type DashboardService interface {
	GetSummary(ctx context.Context) (*service.Summary, error)
}

type ReceiptVerifier interface {
	FetchPaymentInfo(ref string) (receipt.PaymentInfo, error)
}
