package service

import (
	"context"
	"fmt"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawService struct {
	balanceStore *store.BalanceStore
	feeStore     *store.FeeStore
	userStore    *store.UserStore
	publisher    TxEventPublisher
}

func NewWithdrawService(balanceStore *store.BalanceStore, feeStore *store.FeeStore, userStore *store.UserStore, publisher TxEventPublisher) *WithdrawService {
	return &WithdrawService{
		balanceStore: balanceStore,
		feeStore:     feeStore,
		userStore:    userStore,
		publisher:    publisher,
	}
}

type CreateWithdrawParams struct {
	UserID         int64
	Amount         decimal.Decimal
	ChargeAmount   decimal.Decimal
	FeeType        string
	ToCurrencyID   int64
	FromCurrencyID int64
	ToNetworkID    int64
	FromNetworkID  int64
	Note           string
}

// CreateWithdraw creates a PENDING withdraw row. Unlike deposits this
// goes through one database transaction: the store locks the ledger,
// rejects insufficient balance or a second pending request, and records
// the balance snapshot.
func (s *WithdrawService) CreateWithdraw(ctx context.Context, p CreateWithdrawParams) (*models.Balance, error) {
	var fee decimal.Decimal
	if p.FeeType != "" {
		var err error
		fee, err = s.feeStore.GetFlatFee(ctx, p.FeeType)
		if err != nil {
			return nil, fmt.Errorf("withdraw fee lookup failed: %w", err)
		}
	}

	b := &models.Balance{
		UID:             uuid.New().String(),
		TransactionID:   NewTransactionRef("WD"),
		TransactionType: models.TxWithdraw,
		Status:          models.TxPending,
		Amount:          p.Amount,
		FeeType:         p.FeeType,
		FeeAmount:       fee,
		ChargeAmount:    p.ChargeAmount,
		AfterFeeAmount:  p.Amount.Sub(fee),
		ToCurrencyID:    nullID(p.ToCurrencyID),
		FromCurrencyID:  nullID(p.FromCurrencyID),
		ToNetworkID:     nullID(p.ToNetworkID),
		FromNetworkID:   nullID(p.FromNetworkID),
		UserID:          p.UserID,
		Note:            p.Note,
	}

	created, err := s.balanceStore.CreateWithdraw(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to create withdrawal: %w", err)
	}
	return created, nil
}

// UpdateWithdrawStatus mirrors the deposit transition: blind status
// write plus a transaction event for the notification side channel.
func (s *WithdrawService) UpdateWithdrawStatus(ctx context.Context, id int64, status string) (*models.Balance, error) {
	if !models.ValidTransactionStatus(status) {
		return nil, fmt.Errorf("invalid transaction status: %s", status)
	}

	existing, err := s.balanceStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load withdrawal: %w", err)
	}
	if existing == nil || existing.TransactionType != models.TxWithdraw {
		return nil, nil
	}

	updated, err := s.balanceStore.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update withdrawal status: %w", err)
	}
	if updated == nil {
		return nil, nil
	}

	notifyTransaction(ctx, s.userStore, s.publisher, updated)

	return updated, nil
}

func (s *WithdrawService) ListWithdrawals(ctx context.Context, status string) ([]*models.Balance, error) {
	return s.balanceStore.List(ctx, models.TxWithdraw, status)
}

func (s *WithdrawService) GetWithdrawal(ctx context.Context, id int64) (*models.Balance, error) {
	b, err := s.balanceStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil || b.TransactionType != models.TxWithdraw {
		return nil, nil
	}
	return b, nil
}
