package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.ErrorContext(ctx, msg, args...)
}

// LogWarn logs a recoverable problem with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).WarnContext(ctx, msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, keyvals...)
}

// newestFirst returns the last n transactions in reverse insertion order.
// A negative n returns all of them.
func newestFirst(txns []domain.Transaction, n int) []domain.Transaction {
	if n < 0 || n > len(txns) {
		n = len(txns)
	}
	out := make([]domain.Transaction, 0, n)
	for i := len(txns) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, txns[i])
	}
	return out
}
