package repository

import (
	"context"

	"github.com/loofsan/SF-Hacks2025/internal/feedback"
)

type Repository interface {
	Create(ctx context.Context, f *feedback.Feedback) (string, error)
	List(ctx context.Context) ([]*feedback.Feedback, error)
	ByResource(ctx context.Context, resourceID string) ([]*feedback.Feedback, error)
	Stats(ctx context.Context, resourceID string) (feedback.Stats, error)
}
