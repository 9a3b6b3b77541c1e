package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
)

// Medium is a KeyValueMedium backed by the kv_store table.
type Medium struct {
	db         *sql.DB
	quotaBytes int64
}

// NewMedium wraps an opened, migrated database. A quotaBytes of zero disables the quota.
func NewMedium(db *sql.DB, quotaBytes int64) *Medium {
	return &Medium{db: db, quotaBytes: quotaBytes}
}

var _ repositories.KeyValueMedium = (*Medium)(nil)

func (m *Medium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := m.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read key %q: %w", key, err)
	}
	return value, true, nil
}

func (m *Medium) Set(ctx context.Context, key string, value []byte) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write of key %q: %w", key, err)
	}
	defer tx.Rollback()

	if m.quotaBytes > 0 {
		var used int64
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(length(key) + length(value)), 0) FROM kv_store WHERE key <> ?`, key,
		).Scan(&used)
		if err != nil {
			return fmt.Errorf("measure storage usage: %w", err)
		}
		needed := used + int64(len(key)) + int64(len(value))
		if needed > m.quotaBytes {
			return fmt.Errorf("write key %q needs %d of %d bytes: %w", key, needed, m.quotaBytes, repositories.ErrQuotaExceeded)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit write of key %q: %w", key, err)
	}
	return nil
}

func (m *Medium) Delete(ctx context.Context, keys ...string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete of keys %q: %w", keys, err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
			return fmt.Errorf("delete key %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete of keys %q: %w", keys, err)
	}
	return nil
}
