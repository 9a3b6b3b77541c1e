package services

import (
	"context"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// ListTransactions returns one page of transactions, newest first, and the
	// token of the next page (nil on the last page).
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// RecentTransactions returns the last n recorded transactions, newest first.
	RecentTransactions(ctx context.Context, n int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// CreateTransaction validates and records a new transaction. The returned
	// nudge is non-empty when ngirit mode flags a large expense.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, string, error)

	// DeleteTransaction removes a transaction. Unknown IDs are a no-op.
	DeleteTransaction(ctx context.Context, id string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
