package dto

import (
	"time"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BackupDocument is the downloadable snapshot of every stored record.
type BackupDocument struct {
	Profile      ProfileResponse        `json:"profile"`
	Transactions []domain.Transaction   `json:"transactions"`
	Savings      []domain.SavingsTarget `json:"savings"`
	Balance      decimal.Decimal        `json:"balance" swaggertype:"string"`
	ExportDate   time.Time              `json:"exportDate"`
}

// ToBackupDocument converts a domain.Backup to its downloadable form
func ToBackupDocument(b domain.Backup) BackupDocument {
	txns := b.Transactions
	if txns == nil {
		txns = []domain.Transaction{}
	}
	savings := b.Savings
	if savings == nil {
		savings = []domain.SavingsTarget{}
	}
	return BackupDocument{
		Profile:      ToProfileResponse(b.Profile),
		Transactions: txns,
		Savings:      savings,
		Balance:      b.Balance,
		ExportDate:   b.ExportDate.UTC(),
	}
}
