package repositories

import (
	"context"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactions returns every stored transaction in insertion order.
	// A missing or unparsable document yields an empty slice, not an error.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction replaces the transaction with the same ID, or appends it.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes the transaction with the given ID. Unknown IDs are a no-op.
	DeleteTransaction(ctx context.Context, id string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
