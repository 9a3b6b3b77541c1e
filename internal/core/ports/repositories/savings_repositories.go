package repositories

import (
	"context"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
)

// SavingsTargetReader defines read operations for savings targets
type SavingsTargetReader interface {
	// ListSavingsTargets returns every stored target in insertion order.
	ListSavingsTargets(ctx context.Context) ([]domain.SavingsTarget, error)
}

// SavingsTargetWriter defines write operations for savings targets
type SavingsTargetWriter interface {
	// SaveSavingsTarget replaces the first target with the same ID, or appends it.
	SaveSavingsTarget(ctx context.Context, target domain.SavingsTarget) error

	// UpdateSavingsTarget applies mutate to the stored target with the given ID
	// and persists the result in one read-modify-write cycle. It returns
	// apperrors.ErrNotFound without writing when the ID is unknown, and writes
	// nothing when mutate fails.
	UpdateSavingsTarget(ctx context.Context, id string, mutate func(*domain.SavingsTarget) error) (domain.SavingsTarget, error)

	// DeleteSavingsTarget removes the target with the given ID. Unknown IDs are a no-op.
	DeleteSavingsTarget(ctx context.Context, id string) error
}

// SavingsTargetRepositoryFacade combines all savings-related repository interfaces
type SavingsTargetRepositoryFacade interface {
	SavingsTargetReader
	SavingsTargetWriter
}
