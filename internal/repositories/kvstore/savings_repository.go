package kvstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cekel_duit/internal/apperrors"
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	"github.com/SscSPs/cekel_duit/internal/models"
	"github.com/SscSPs/cekel_duit/internal/utils/mapping"
)

type savingsTargetRepository struct {
	*BaseRepository
}

func newSavingsTargetRepository(base *BaseRepository) repositories.SavingsTargetRepositoryFacade {
	return &savingsTargetRepository{BaseRepository: base}
}

func (r *savingsTargetRepository) ListSavingsTargets(ctx context.Context) ([]domain.SavingsTarget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *savingsTargetRepository) SaveSavingsTarget(ctx context.Context, target domain.SavingsTarget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range targets {
		if targets[i].ID == target.ID {
			targets[i] = target
			replaced = true
			break
		}
	}
	if !replaced {
		targets = append(targets, target)
	}

	return saveDocument(ctx, r.BaseRepository, KeySavingsTargets, mapping.ToModelSavingsTargetSlice(targets))
}

func (r *savingsTargetRepository) UpdateSavingsTarget(ctx context.Context, id string, mutate func(*domain.SavingsTarget) error) (domain.SavingsTarget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets, err := r.load(ctx)
	if err != nil {
		return domain.SavingsTarget{}, err
	}

	idx := -1
	for i := range targets {
		if targets[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.SavingsTarget{}, fmt.Errorf("savings target %s: %w", id, apperrors.ErrNotFound)
	}

	updated := targets[idx]
	if err := mutate(&updated); err != nil {
		return domain.SavingsTarget{}, err
	}
	updated.ID = id
	targets[idx] = updated

	if err := saveDocument(ctx, r.BaseRepository, KeySavingsTargets, mapping.ToModelSavingsTargetSlice(targets)); err != nil {
		return domain.SavingsTarget{}, err
	}
	return updated, nil
}

func (r *savingsTargetRepository) DeleteSavingsTarget(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := targets[:0]
	for _, t := range targets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	return saveDocument(ctx, r.BaseRepository, KeySavingsTargets, mapping.ToModelSavingsTargetSlice(kept))
}

func (r *savingsTargetRepository) load(ctx context.Context) ([]domain.SavingsTarget, error) {
	stored, err := loadDocument(ctx, r.BaseRepository, KeySavingsTargets, []models.SavingsTarget{})
	if err != nil {
		return []domain.SavingsTarget{}, err
	}
	targets, dropped := mapping.ToDomainSavingsTargetSlice(stored)
	if dropped > 0 {
		r.Logger.WarnContext(ctx, "Skipped malformed stored savings targets", slog.Int("dropped", dropped))
	}
	return targets, nil
}
