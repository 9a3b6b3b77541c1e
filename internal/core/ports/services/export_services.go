package services

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
)

// ExportSvc produces downloadable copies of the data and wipes it.
type ExportSvc interface {
	// Backup snapshots every collection and suggests a download filename.
	Backup(ctx context.Context, now time.Time) (*domain.Backup, string, error)

	// WriteTransactionsCSV writes every transaction as CSV, oldest first.
	WriteTransactionsCSV(ctx context.Context, w io.Writer) error

	ClearAll(ctx context.Context) error
}
