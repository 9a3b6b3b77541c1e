package mapping

import (
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/models"
)

// ToModelTransaction converts a domain Transaction to its stored form
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:       d.ID,
		Type:     string(d.Type),
		Amount:   d.Amount,
		Category: d.Category,
		Date:     d.Date,
		Note:     d.Note,
	}
}

// ToDomainTransaction converts a stored Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:       m.ID,
		Type:     domain.FlowType(m.Type),
		Amount:   m.Amount,
		Category: m.Category,
		Date:     m.Date,
		Note:     m.Note,
	}
}

// ToDomainTransactionSlice converts stored transactions, dropping records that
// cannot be identified (missing id) or classified (unknown type).
// The second return value is the number of dropped records.
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, int) {
	ds := make([]domain.Transaction, 0, len(ms))
	dropped := 0
	for _, m := range ms {
		d := ToDomainTransaction(m)
		if d.ID == "" || !d.Type.IsValid() {
			dropped++
			continue
		}
		ds = append(ds, d)
	}
	return ds, dropped
}

// ToModelTransactionSlice converts domain transactions to their stored form
func ToModelTransactionSlice(ds []domain.Transaction) []models.Transaction {
	ms := make([]models.Transaction, len(ds))
	for i, d := range ds {
		ms[i] = ToModelTransaction(d)
	}
	return ms
}
