package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Backup is a point-in-time snapshot of every stored record.
type Backup struct {
	Profile      UserProfile
	Transactions []Transaction
	Savings      []SavingsTarget
	Balance      decimal.Decimal
	ExportDate   time.Time
}
