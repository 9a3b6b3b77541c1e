package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/cekel_duit/internal/apperrors"
	"github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
)

// Storage keys. Each holds one JSON document.
const (
	KeyTransactions   = "transactions"
	KeySavingsTargets = "savingsTargets"
	KeyProfile        = "profile"
)

// BaseRepository provides common functionality for all repositories.
// Repositories built by the same provider share one BaseRepository, so every
// read-modify-write cycle against the medium is serialised.
type BaseRepository struct {
	Medium repositories.KeyValueMedium
	Logger *slog.Logger

	mu sync.Mutex
}

func newBaseRepository(medium repositories.KeyValueMedium, logger *slog.Logger) *BaseRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &BaseRepository{Medium: medium, Logger: logger}
}

// loadDocument decodes the document under key into a value of type T.
// An absent or unparsable document yields fallback; only medium failures are returned.
func loadDocument[T any](ctx context.Context, r *BaseRepository, key string, fallback T) (T, error) {
	raw, found, err := r.Medium.Get(ctx, key)
	if err != nil {
		return fallback, fmt.Errorf("%w: read %q: %w", apperrors.ErrPersistence, key, err)
	}
	if !found {
		return fallback, nil
	}

	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.Logger.WarnContext(ctx, "Discarding unparsable stored document",
			slog.String("key", key),
			slog.Int("size", len(raw)),
			slog.String("error", err.Error()))
		return fallback, nil
	}
	return doc, nil
}

// saveDocument encodes doc and writes it under key.
func saveDocument(ctx context.Context, r *BaseRepository, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", apperrors.ErrPersistence, key, err)
	}
	if err := r.Medium.Set(ctx, key, raw); err != nil {
		r.Logger.ErrorContext(ctx, "Failed to persist document",
			slog.String("key", key),
			slog.Int("size", len(raw)),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: write %q: %w", apperrors.ErrPersistence, key, err)
	}
	return nil
}

// ClearAll removes every stored document.
func (r *BaseRepository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := []string{KeyTransactions, KeySavingsTargets, KeyProfile}
	if err := r.Medium.Delete(ctx, keys...); err != nil {
		r.Logger.ErrorContext(ctx, "Failed to clear stored data", slog.String("error", err.Error()))
		return fmt.Errorf("%w: delete %q: %w", apperrors.ErrPersistence, keys, err)
	}
	r.Logger.InfoContext(ctx, "Cleared all stored data")
	return nil
}
