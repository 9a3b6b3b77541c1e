package services

import (
	"context"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/dto"
)

// SavingsReaderSvc defines read operations for savings targets
type SavingsReaderSvc interface {
	// ListTargets returns every target with its progress, in creation order.
	ListTargets(ctx context.Context) ([]domain.SavingsProgress, error)
}

// SavingsWriterSvc defines write operations for savings targets
type SavingsWriterSvc interface {
	CreateTarget(ctx context.Context, req dto.CreateSavingsTargetRequest) (*domain.SavingsProgress, error)

	// AddMoney increases the saved amount of a target. It returns
	// apperrors.ErrNotFound for an unknown ID without writing anything.
	AddMoney(ctx context.Context, id string, req dto.AddMoneyRequest) (*domain.SavingsProgress, error)

	DeleteTarget(ctx context.Context, id string) error
}

// SavingsSvcFacade combines all savings-related service interfaces
type SavingsSvcFacade interface {
	SavingsReaderSvc
	SavingsWriterSvc
}
