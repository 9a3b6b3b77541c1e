package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowType indicates the direction of a transaction.
type FlowType string

const (
	Inflow  FlowType = "inflow"  // money received ("masuk")
	Outflow FlowType = "outflow" // money spent ("keluar")
)

// DateLayout is the calendar-date format used for every stored date.
const DateLayout = "2006-01-02"

// IsValid reports whether f is one of the known directions.
func (f FlowType) IsValid() bool {
	return f == Inflow || f == Outflow
}

// Transaction is a single income or expense entry. Transactions are never
// edited in place; they are only created and deleted.
type Transaction struct {
	ID       string          `json:"id"`
	Type     FlowType        `json:"type"`
	Amount   decimal.Decimal `json:"amount"` // Non-negative
	Category string          `json:"category"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Note     string          `json:"note"`
}

// DateValue parses the transaction date as midnight UTC.
func (t Transaction) DateValue() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}

// FormatDate renders an instant as a UTC calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
