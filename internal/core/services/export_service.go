package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	portsrepo "github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cekel_duit/internal/core/ports/services"
	"github.com/SscSPs/cekel_duit/internal/utils"
	"github.com/SscSPs/cekel_duit/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

var csvHeader = []string{"id", "date", "type", "category", "category_label", "amount", "amount_formatted", "note"}

type exportService struct {
	BaseService
	appName string
	repos   portsrepo.RepositoryProvider
}

// NewExportService creates a new export service. appName prefixes backup filenames.
func NewExportService(appName string, repos portsrepo.RepositoryProvider) portssvc.ExportSvc {
	return &exportService{appName: appName, repos: repos}
}

func (s *exportService) Backup(ctx context.Context, now time.Time) (*domain.Backup, string, error) {
	var (
		profile domain.UserProfile
		txns    []domain.Transaction
		savings []domain.SavingsTarget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if profile, err = s.repos.ProfileRepo.GetProfile(gctx); err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if txns, err = s.repos.TransactionRepo.ListTransactions(gctx); err != nil {
			return fmt.Errorf("failed to read transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if savings, err = s.repos.SavingsRepo.ListSavingsTargets(gctx); err != nil {
			return fmt.Errorf("failed to read savings targets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to read data for backup")
		return nil, "", err
	}

	backup := &domain.Backup{
		Profile:      profile,
		Transactions: txns,
		Savings:      savings,
		Balance:      accounting.CalculateBalance(txns),
		ExportDate:   now.UTC(),
	}
	filename := fmt.Sprintf("%s-backup-%s.json", s.appName, domain.FormatDate(now))

	s.LogInfo(ctx, "Backup prepared",
		slog.Int("transactions", len(txns)),
		slog.Int("savings_targets", len(savings)))
	return backup, filename, nil
}

func (s *exportService) WriteTransactionsCSV(ctx context.Context, w io.Writer) error {
	txns, err := s.repos.TransactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read transactions for CSV export")
		return fmt.Errorf("failed to read transactions: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, t := range txns {
		record := []string{
			t.ID,
			t.Date,
			string(t.Type),
			t.Category,
			domain.LookupCategory(t.Category, t.Type).Label,
			t.Amount.String(),
			utils.FormatRupiah(t.Amount),
			t.Note,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func (s *exportService) ClearAll(ctx context.Context) error {
	if err := s.repos.Eraser.ClearAll(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear stored data")
		return fmt.Errorf("failed to clear data: %w", err)
	}
	s.LogInfo(ctx, "All stored data cleared")
	return nil
}
