package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a trailing report window.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Days returns the window length of the period, or 0 when unknown.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	default:
		return 0
	}
}

// Window is a half-open [Start, End) range of instants. A zero End leaves the
// window open-ended.
type Window struct {
	Start time.Time
	End   time.Time
}

// PeriodTotals holds income and expense sums for a window.
type PeriodTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Net is income minus expense.
func (p PeriodTotals) Net() decimal.Decimal {
	return p.Income.Sub(p.Expense)
}

// CategoryAmount is the summed amount of one category.
type CategoryAmount struct {
	Category string          `json:"category"`
	Label    string          `json:"label"`
	Icon     string          `json:"icon"`
	Amount   decimal.Decimal `json:"amount"`
}

// DailyBucket holds the sums of a single calendar day.
type DailyBucket struct {
	Date    string          `json:"date"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
}

// PeriodReport is everything the report screen shows for one period.
type PeriodReport struct {
	Period          Period
	GeneratedAt     time.Time
	Window          Window
	Totals          PeriodTotals
	Categories      []CategoryAmount
	Daily           []DailyBucket
	LargestCategory *CategoryAmount
}

// HomeSummary backs the landing screen.
type HomeSummary struct {
	Profile UserProfile
	Balance decimal.Decimal
	Recent  []Transaction
	Quote   string
}
