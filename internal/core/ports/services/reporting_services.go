package services

import (
	"context"
	"time"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvc computes derived views over the stored transactions.
// Nothing it returns is cached or persisted.
type ReportingSvc interface {
	Balance(ctx context.Context) (decimal.Decimal, error)
	PeriodReport(ctx context.Context, period domain.Period, now time.Time) (*domain.PeriodReport, error)
	HomeSummary(ctx context.Context) (*domain.HomeSummary, error)
}
