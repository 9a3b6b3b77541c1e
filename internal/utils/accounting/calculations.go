package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateSignedAmount applies the sign of the transaction direction to its amount.
// Inflows are positive, outflows negative.
func CalculateSignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.Inflow:
		return txn.Amount, nil
	case domain.Outflow:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown flow type '%s' encountered for transaction ID %s", txn.Type, txn.ID)
	}
}

// CalculateBalance folds the transactions into total inflow minus total outflow.
// Records with an unknown direction contribute nothing.
func CalculateBalance(txns []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		signed, err := CalculateSignedAmount(txn)
		if err != nil {
			continue
		}
		balance = balance.Add(signed)
	}
	return balance
}

// TrailingWindow returns the window of transactions dated on or after
// periodDays×24h before now. It has no upper bound: future-dated transactions
// count towards the period.
func TrailingWindow(periodDays int, now time.Time) domain.Window {
	return domain.Window{
		Start: now.UTC().Add(-time.Duration(periodDays) * 24 * time.Hour),
	}
}

// InWindow reports whether the transaction date, read as midnight UTC, lies in
// [Start, End), or on/after Start when End is zero.
// Unparsable dates are never inside a window.
func InWindow(txn domain.Transaction, w domain.Window) bool {
	d, err := txn.DateValue()
	if err != nil {
		return false
	}
	if d.Before(w.Start) {
		return false
	}
	return w.End.IsZero() || d.Before(w.End)
}

// FilterWindow keeps the transactions inside the window, preserving order.
func FilterWindow(txns []domain.Transaction, w domain.Window) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if InWindow(txn, w) {
			out = append(out, txn)
		}
	}
	return out
}

// PeriodTotals sums income and expense of the transactions inside the window.
func PeriodTotals(txns []domain.Transaction, w domain.Window) domain.PeriodTotals {
	totals := domain.PeriodTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, txn := range txns {
		if !InWindow(txn, w) {
			continue
		}
		switch txn.Type {
		case domain.Inflow:
			totals.Income = totals.Income.Add(txn.Amount)
		case domain.Outflow:
			totals.Expense = totals.Expense.Add(txn.Amount)
		}
	}
	return totals
}

// CategoryBreakdown groups the transactions of one direction by category key and
// sums them. Entries appear in the order their key was first seen.
func CategoryBreakdown(txns []domain.Transaction, flow domain.FlowType) []domain.CategoryAmount {
	index := make(map[string]int)
	out := make([]domain.CategoryAmount, 0)
	for _, txn := range txns {
		if txn.Type != flow {
			continue
		}
		i, ok := index[txn.Category]
		if !ok {
			cat := domain.LookupCategory(txn.Category, flow)
			index[txn.Category] = len(out)
			out = append(out, domain.CategoryAmount{
				Category: txn.Category,
				Label:    cat.Label,
				Icon:     cat.Icon,
				Amount:   txn.Amount,
			})
			continue
		}
		out[i].Amount = out[i].Amount.Add(txn.Amount)
	}
	return out
}

// LargestCategory returns the entry with the highest amount, the earliest one on ties.
// It returns nil for an empty breakdown.
func LargestCategory(breakdown []domain.CategoryAmount) *domain.CategoryAmount {
	if len(breakdown) == 0 {
		return nil
	}
	largest := breakdown[0]
	for _, c := range breakdown[1:] {
		if c.Amount.GreaterThan(largest.Amount) {
			largest = c
		}
	}
	return &largest
}

// DailySeries returns one bucket per UTC calendar day for the last periodDays days
// ending today, oldest first. Transactions dated outside those days are ignored.
func DailySeries(txns []domain.Transaction, periodDays int, now time.Time) []domain.DailyBucket {
	if periodDays <= 0 {
		return []domain.DailyBucket{}
	}
	now = now.UTC()
	buckets := make([]domain.DailyBucket, periodDays)
	index := make(map[string]int, periodDays)
	for i := 0; i < periodDays; i++ {
		date := domain.FormatDate(now.AddDate(0, 0, -(periodDays - 1 - i)))
		buckets[i] = domain.DailyBucket{Date: date, Inflow: decimal.Zero, Outflow: decimal.Zero}
		index[date] = i
	}

	for _, txn := range txns {
		i, ok := index[txn.Date]
		if !ok {
			continue
		}
		switch txn.Type {
		case domain.Inflow:
			buckets[i].Inflow = buckets[i].Inflow.Add(txn.Amount)
		case domain.Outflow:
			buckets[i].Outflow = buckets[i].Outflow.Add(txn.Amount)
		}
	}
	return buckets
}

// ProgressPercent returns min(current/target×100, 100) for a savings target.
// The target amount must be positive.
func ProgressPercent(target domain.SavingsTarget) (decimal.Decimal, error) {
	if !target.Target.IsPositive() {
		return decimal.Zero, fmt.Errorf("savings target %s has non-positive goal %s", target.ID, target.Target.String())
	}
	pct := target.Current.Div(target.Target).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred, nil
	}
	if pct.IsNegative() {
		return decimal.Zero, nil
	}
	return pct, nil
}
