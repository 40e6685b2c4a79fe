package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/store"
	"github.com/finpay/finpay-services/internal/comm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxEventPublisher pushes a transaction event to the notification and
// live-feed services. Implementations must not block the caller on
// delivery.
type TxEventPublisher interface {
	PublishTransactionEvent(ev comm.TransactionEvent)
}

type DepositService struct {
	balanceStore *store.BalanceStore
	feeStore     *store.FeeStore
	userStore    *store.UserStore
	publisher    TxEventPublisher
}

func NewDepositService(balanceStore *store.BalanceStore, feeStore *store.FeeStore, userStore *store.UserStore, publisher TxEventPublisher) *DepositService {
	return &DepositService{
		balanceStore: balanceStore,
		feeStore:     feeStore,
		userStore:    userStore,
		publisher:    publisher,
	}
}

type CreateDepositParams struct {
	UserID         int64
	Amount         decimal.Decimal
	ChargeAmount   decimal.Decimal
	FeeType        string
	Status         string
	ToCurrencyID   int64
	FromCurrencyID int64
	ToNetworkID    int64
	FromNetworkID  int64
	Note           string
}

// NewTransactionRef builds a short public reference like DEP-1a2b3c4d.
func NewTransactionRef(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}

// CreateDeposit persists one ledger row. The fee is the flat fee for
// the payload's fee type, after_fee_amount = amount - fee_amount, and
// after_balance is the user's current ledger balance plus the net
// amount, computed once here. No funds are applied at creation; that
// waits for a status transition.
func (s *DepositService) CreateDeposit(ctx context.Context, p CreateDepositParams) (*models.Balance, error) {
	status := p.Status
	if status == "" {
		status = models.TxPending
	}
	if !models.ValidTransactionStatus(status) {
		return nil, fmt.Errorf("invalid transaction status: %s", status)
	}

	var fee decimal.Decimal
	if p.FeeType != "" {
		var err error
		fee, err = s.feeStore.GetFlatFee(ctx, p.FeeType)
		if err != nil {
			return nil, fmt.Errorf("deposit fee lookup failed: %w", err)
		}
	}
	afterFee := p.Amount.Sub(fee)

	current, err := s.balanceStore.GetUserBalance(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("balance lookup failed: %w", err)
	}

	b := &models.Balance{
		UID:             uuid.New().String(),
		TransactionID:   NewTransactionRef("DEP"),
		TransactionType: models.TxDeposit,
		Status:          status,
		Amount:          p.Amount,
		FeeType:         p.FeeType,
		FeeAmount:       fee,
		ChargeAmount:    p.ChargeAmount,
		AfterFeeAmount:  afterFee,
		AfterBalance:    current.Add(afterFee),
		ToCurrencyID:    nullID(p.ToCurrencyID),
		FromCurrencyID:  nullID(p.FromCurrencyID),
		ToNetworkID:     nullID(p.ToNetworkID),
		FromNetworkID:   nullID(p.FromNetworkID),
		UserID:          p.UserID,
		Note:            p.Note,
	}

	created, err := s.balanceStore.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}
	return created, nil
}

// UpdateDepositStatus writes the new status and publishes a transaction
// event. The write is blind: fee and balance fields are not recomputed.
// Returns nil, nil when the deposit does not exist.
func (s *DepositService) UpdateDepositStatus(ctx context.Context, id int64, status string) (*models.Balance, error) {
	if !models.ValidTransactionStatus(status) {
		return nil, fmt.Errorf("invalid transaction status: %s", status)
	}

	existing, err := s.balanceStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load deposit: %w", err)
	}
	if existing == nil || existing.TransactionType != models.TxDeposit {
		return nil, nil
	}

	updated, err := s.balanceStore.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update deposit status: %w", err)
	}
	if updated == nil {
		return nil, nil
	}

	notifyTransaction(ctx, s.userStore, s.publisher, updated)

	return updated, nil
}

// notifyTransaction resolves the owning user and publishes the event.
// Shared by the deposit and withdraw services.
func notifyTransaction(ctx context.Context, users *store.UserStore, publisher TxEventPublisher, b *models.Balance) {
	user, err := users.GetByID(ctx, b.UserID)
	if err != nil || user == nil {
		// without an owner there is nobody to notify
		return
	}

	publisher.PublishTransactionEvent(comm.TransactionEvent{
		TransactionID:   b.TransactionID,
		TransactionType: b.TransactionType,
		Status:          b.Status,
		Amount:          b.Amount.String(),
		UserID:          user.ID,
		FullName:        user.FullName,
		Email:           user.Email,
		Timestamp:       time.Now().Unix(),
	})
}

func (s *DepositService) ListDeposits(ctx context.Context, status string) ([]*models.Balance, error) {
	return s.balanceStore.List(ctx, models.TxDeposit, status)
}

func (s *DepositService) GetDeposit(ctx context.Context, id int64) (*models.Balance, error) {
	b, err := s.balanceStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil || b.TransactionType != models.TxDeposit {
		return nil, nil
	}
	return b, nil
}
