package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cekel_duit/internal/apperrors"
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	portsrepo "github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cekel_duit/internal/core/ports/services"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/SscSPs/cekel_duit/internal/utils/pagination"
	"github.com/SscSPs/cekel_duit/internal/utils/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultNgiritThreshold is the expense amount above which ngirit mode nudges.
var DefaultNgiritThreshold = decimal.NewFromInt(50000)

const defaultPageSize = 20

type transactionService struct {
	BaseService
	txnRepo         portsrepo.TransactionRepositoryFacade
	profileRepo     portsrepo.ProfileRepository
	ngiritThreshold decimal.Decimal
	newID           func() string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithNgiritThreshold overrides the nudge threshold
func WithNgiritThreshold(threshold decimal.Decimal) TransactionServiceOption {
	return func(s *transactionService) {
		s.ngiritThreshold = threshold
	}
}

// WithIDGenerator overrides how transaction IDs are generated
func WithIDGenerator(fn func() string) TransactionServiceOption {
	return func(s *transactionService) {
		s.newID = fn
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, profileRepo portsrepo.ProfileRepository, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:         repo,
		profileRepo:     profileRepo,
		ngiritThreshold: DefaultNgiritThreshold,
		newID:           uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, string, error) {
	if err := validation.Struct(req); err != nil {
		s.LogWarn(ctx, "Rejected invalid transaction", slog.String("error", err.Error()))
		return nil, "", err
	}

	note := req.Note
	if note == "" {
		note = req.Category
	}

	txn := domain.Transaction{
		ID:       s.newID(),
		Type:     req.Type,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		Note:     note,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.ID))
		return nil, "", fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.ID),
		slog.String("type", string(txn.Type)),
		slog.String("category", txn.Category))

	return &txn, s.ngiritNudge(ctx, txn), nil
}

// ngiritNudge returns a frugality reminder for large expenses when ngirit mode is on.
func (s *transactionService) ngiritNudge(ctx context.Context, txn domain.Transaction) string {
	if txn.Type != domain.Outflow || !txn.Amount.GreaterThan(s.ngiritThreshold) {
		return ""
	}
	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		s.LogWarn(ctx, "Skipping ngirit nudge, profile unavailable", slog.String("error", err.Error()))
		return ""
	}
	if !profile.NgiritMode {
		return ""
	}
	return domain.RandomNgiritMessage(profile.Language)
}

func (s *transactionService) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	ordered := newestFirst(txns, -1)

	start := 0
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeOffsetToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		ids := make([]string, len(ordered))
		for i, t := range ordered {
			ids[i] = t.ID
		}
		start = cursor.Resolve(ids)
	}

	end := start + limit
	if end > len(ordered) {
		end = len(ordered)
	}
	page := ordered[start:end]

	var next *string
	if end < len(ordered) && len(page) > 0 {
		token := pagination.EncodeOffsetToken(end, page[len(page)-1].ID)
		next = &token
	}

	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(page)), slog.Int("total", len(ordered)))
	return page, next, nil
}

func (s *transactionService) RecentTransactions(ctx context.Context, n int) ([]domain.Transaction, error) {
	if n <= 0 {
		return []domain.Transaction{}, nil
	}
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return newestFirst(txns, n), nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: transaction id is required", apperrors.ErrValidation)
	}
	if err := s.txnRepo.DeleteTransaction(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", id))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", id))
	return nil
}
