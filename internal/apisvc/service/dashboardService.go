package service

import (
	"context"
	"fmt"
	"time"

	"github.com/finpay/finpay-services/internal/apisvc/cache"
	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/store"
	"github.com/shopspring/decimal"
)

const summaryCacheKey = "dashboard:summary"

type DashboardService struct {
	dashboardStore *store.DashboardStore
	summaryCache   *cache.ViewCache[Summary]
}

// NewDashboardService takes an optional summary cache; nil disables
// caching.
func NewDashboardService(dashboardStore *store.DashboardStore, summaryCache *cache.ViewCache[Summary]) *DashboardService {
	return &DashboardService{dashboardStore: dashboardStore, summaryCache: summaryCache}
}

type SeriesPoint struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type RegistrationPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Summary is the admin dashboard payload.
type Summary struct {
	UsersByStatus     map[string]int64        `json:"users_by_status"`
	UsersByRole       map[string]int64        `json:"users_by_role"`
	TotalBalance      decimal.Decimal         `json:"total_balance"`
	CompletedDeposits decimal.Decimal         `json:"completed_deposits"`
	InReviewCount     int64                   `json:"in_review_count"`
	Registrations     []RegistrationPoint     `json:"registrations_7d"`
	Funds             []SeriesPoint           `json:"funds_7d"`
	RecentWithdrawals []*models.WithdrawBrief `json:"recent_withdrawals"`
}

// GetSummary assembles the dashboard aggregates. The funds series runs
// the full balance aggregate once per day in the loop, so every point
// carries the current total rather than a historical snapshot.
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	if s.summaryCache != nil {
		if cached, ok := s.summaryCache.Get(ctx, summaryCacheKey); ok {
			return cached, nil
		}
	}

	byStatus, err := s.dashboardStore.CountUsersByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary failed: %w", err)
	}

	byRole, err := s.dashboardStore.CountUsersByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary failed: %w", err)
	}

	totalBalance, err := s.dashboardStore.SumUserBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary failed: %w", err)
	}

	completedDeposits, err := s.dashboardStore.SumCompletedDeposits(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary failed: %w", err)
	}

	inReview, err := s.dashboardStore.CountInReview(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary failed: %w", err)
	}

	today := time.Now().Truncate(24 * time.Hour)

	var registrations []RegistrationPoint
	var funds []SeriesPoint
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)

		count, err := s.dashboardStore.CountRegistrationsOn(ctx, day)
		if err != nil {
			return nil, fmt.Errorf("dashboard summary failed: %w", err)
		}
		registrations = append(registrations, RegistrationPoint{
			Date:  day.Format("2006-01-02"),
			Count: count,
		})

		dayTotal, err := s.dashboardStore.SumUserBalances(ctx)
		if err != nil {
			return nil, fmt.Errorf("dashboard summary failed: %w", err)
		}
		funds = append(funds, SeriesPoint{
			Date:  day.Format("2006-01-02"),
			Value: dayTotal,
		})
	}

	recent, err := s.dashboardStore.RecentWithdrawRequests(ctx, 7)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary failed: %w", err)
	}

	summary := &Summary{
		UsersByStatus:     byStatus,
		UsersByRole:       byRole,
		TotalBalance:      totalBalance,
		CompletedDeposits: completedDeposits,
		InReviewCount:     inReview,
		Registrations:     registrations,
		Funds:             funds,
		RecentWithdrawals: recent,
	}

	if s.summaryCache != nil {
		s.summaryCache.Set(ctx, summaryCacheKey, summary)
	}

	return summary, nil
}
