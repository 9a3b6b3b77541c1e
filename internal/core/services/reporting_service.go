package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cekel_duit/internal/apperrors"
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	portsrepo "github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cekel_duit/internal/core/ports/services"
	"github.com/SscSPs/cekel_duit/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// HomeRecentCount is how many transactions the home summary shows.
const HomeRecentCount = 5

type reportingService struct {
	BaseService
	txnRepo     portsrepo.TransactionReader
	profileRepo portsrepo.ProfileRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionReader, profileRepo portsrepo.ProfileRepository) portssvc.ReportingSvc {
	return &reportingService{txnRepo: txnRepo, profileRepo: profileRepo}
}

func (s *reportingService) Balance(ctx context.Context) (decimal.Decimal, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for balance")
		return decimal.Zero, fmt.Errorf("failed to calculate balance: %w", err)
	}
	return accounting.CalculateBalance(txns), nil
}

func (s *reportingService) PeriodReport(ctx context.Context, period domain.Period, now time.Time) (*domain.PeriodReport, error) {
	days := period.Days()
	if days == 0 {
		return nil, fmt.Errorf("%w: unknown report period %q", apperrors.ErrValidation, period)
	}

	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for report", slog.String("period", string(period)))
		return nil, fmt.Errorf("failed to build %s report: %w", period, err)
	}

	window := accounting.TrailingWindow(days, now)
	categories := accounting.CategoryBreakdown(accounting.FilterWindow(txns, window), domain.Outflow)

	report := &domain.PeriodReport{
		Period:          period,
		GeneratedAt:     now.UTC(),
		Window:          window,
		Totals:          accounting.PeriodTotals(txns, window),
		Categories:      categories,
		Daily:           accounting.DailySeries(txns, days, now),
		LargestCategory: accounting.LargestCategory(categories),
	}

	s.LogDebug(ctx, "Period report computed",
		slog.String("period", string(period)),
		slog.Int("categories", len(categories)))
	return report, nil
}

func (s *reportingService) HomeSummary(ctx context.Context) (*domain.HomeSummary, error) {
	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read profile for home summary")
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for home summary")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &domain.HomeSummary{
		Profile: profile,
		Balance: accounting.CalculateBalance(txns),
		Recent:  newestFirst(txns, HomeRecentCount),
		Quote:   domain.RandomQuote(profile.Language),
	}, nil
}
