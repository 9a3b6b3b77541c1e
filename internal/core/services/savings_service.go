package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cekel_duit/internal/apperrors"
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	portsrepo "github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cekel_duit/internal/core/ports/services"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/SscSPs/cekel_duit/internal/utils/accounting"
	"github.com/SscSPs/cekel_duit/internal/utils/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type savingsService struct {
	BaseService
	repo  portsrepo.SavingsTargetRepositoryFacade
	newID func() string
}

// NewSavingsService creates a new savings service.
func NewSavingsService(repo portsrepo.SavingsTargetRepositoryFacade) portssvc.SavingsSvcFacade {
	return &savingsService{repo: repo, newID: uuid.NewString}
}

func (s *savingsService) CreateTarget(ctx context.Context, req dto.CreateSavingsTargetRequest) (*domain.SavingsProgress, error) {
	if err := validation.Struct(req); err != nil {
		s.LogWarn(ctx, "Rejected invalid savings target", slog.String("error", err.Error()))
		return nil, err
	}

	emoji := req.Emoji
	if emoji == "" {
		emoji = domain.DefaultSavingsEmoji
	}
	target := domain.SavingsTarget{
		ID:       s.newID(),
		Name:     req.Name,
		Target:   req.Target,
		Current:  decimal.Zero,
		Deadline: req.Deadline,
		Emoji:    emoji,
	}

	if err := s.repo.SaveSavingsTarget(ctx, target); err != nil {
		s.LogError(ctx, err, "Failed to save savings target", slog.String("target_id", target.ID))
		return nil, fmt.Errorf("failed to save savings target: %w", err)
	}

	s.LogInfo(ctx, "Savings target created", slog.String("target_id", target.ID))
	progress := s.progress(ctx, target)
	return &progress, nil
}

func (s *savingsService) ListTargets(ctx context.Context) ([]domain.SavingsProgress, error) {
	targets, err := s.repo.ListSavingsTargets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list savings targets")
		return nil, fmt.Errorf("failed to list savings targets: %w", err)
	}
	out := make([]domain.SavingsProgress, len(targets))
	for i, t := range targets {
		out[i] = s.progress(ctx, t)
	}
	return out, nil
}

func (s *savingsService) AddMoney(ctx context.Context, id string, req dto.AddMoneyRequest) (*domain.SavingsProgress, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateSavingsTarget(ctx, id, func(t *domain.SavingsTarget) error {
		// Current is never clamped to the goal.
		t.Current = t.Current.Add(req.Amount)
		return nil
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "Deposit to unknown savings target", slog.String("target_id", id))
		return nil, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save savings deposit", slog.String("target_id", id))
		return nil, fmt.Errorf("failed to save savings deposit: %w", err)
	}

	s.LogInfo(ctx, "Money added to savings target",
		slog.String("target_id", id),
		slog.String("amount", req.Amount.String()))
	progress := s.progress(ctx, updated)
	return &progress, nil
}

func (s *savingsService) DeleteTarget(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: savings target id is required", apperrors.ErrValidation)
	}
	if err := s.repo.DeleteSavingsTarget(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete savings target", slog.String("target_id", id))
		return fmt.Errorf("failed to delete savings target: %w", err)
	}
	s.LogInfo(ctx, "Savings target deleted", slog.String("target_id", id))
	return nil
}

func (s *savingsService) progress(ctx context.Context, t domain.SavingsTarget) domain.SavingsProgress {
	pct, err := accounting.ProgressPercent(t)
	if err != nil {
		// Only reachable for corrupted stored data; show it as no progress.
		s.LogWarn(ctx, "Savings target has no usable goal", slog.String("target_id", t.ID), slog.String("error", err.Error()))
	}
	remaining := t.Target.Sub(t.Current)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return domain.SavingsProgress{SavingsTarget: t, Percent: pct, Remaining: remaining}
}
