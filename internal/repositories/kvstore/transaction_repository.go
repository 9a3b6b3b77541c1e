package kvstore

import (
	"context"
	"log/slog"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	"github.com/SscSPs/cekel_duit/internal/models"
	"github.com/SscSPs/cekel_duit/internal/utils/mapping"
)

type transactionRepository struct {
	*BaseRepository
}

func newTransactionRepository(base *BaseRepository) repositories.TransactionRepositoryFacade {
	return &transactionRepository{BaseRepository: base}
}

func (r *transactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txns, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range txns {
		if txns[i].ID == txn.ID {
			txns[i] = txn
			replaced = true
			break
		}
	}
	if !replaced {
		txns = append(txns, txn)
	}

	return saveDocument(ctx, r.BaseRepository, KeyTransactions, mapping.ToModelTransactionSlice(txns))
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txns, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := txns[:0]
	for _, t := range txns {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(txns) {
		r.Logger.DebugContext(ctx, "Transaction to delete not found", slog.String("transaction_id", id))
	}

	return saveDocument(ctx, r.BaseRepository, KeyTransactions, mapping.ToModelTransactionSlice(kept))
}

// load must be called with the lock held.
func (r *transactionRepository) load(ctx context.Context) ([]domain.Transaction, error) {
	stored, err := loadDocument(ctx, r.BaseRepository, KeyTransactions, []models.Transaction{})
	if err != nil {
		return []domain.Transaction{}, err
	}
	txns, dropped := mapping.ToDomainTransactionSlice(stored)
	if dropped > 0 {
		r.Logger.WarnContext(ctx, "Skipped malformed stored transactions", slog.Int("dropped", dropped))
	}
	return txns, nil
}
