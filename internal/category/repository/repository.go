package repository

import (
	"context"
	"errors"

	"github.com/loofsan/SF-Hacks2025/internal/category"
)

var ErrNotFound = errors.New("category not found")

// Repository is the read-mostly category table. ReplaceAll is used by seeding only.
type Repository interface {
	List(ctx context.Context) ([]category.Category, error)
	Get(ctx context.Context, name string) (*category.Category, error)
	ReplaceAll(ctx context.Context, cats []category.Category) error
	Count(ctx context.Context) (int64, error)
}
