package repository

import (
	"context"

	"github.com/loofsan/SF-Hacks2025/internal/searchlog"
)

// Repository appends and reads search audit records. Entries are never updated.
type Repository interface {
	Create(ctx context.Context, l *searchlog.SearchLog) (string, error)
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]*searchlog.SearchLog, error)
	Count(ctx context.Context) (int64, error)
}
