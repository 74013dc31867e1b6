package repository

import (
	"context"
	"sync"
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/feedback"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MemoryRepo struct {
	mu     sync.RWMutex
	events []*feedback.Feedback
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Create(_ context.Context, f *feedback.Feedback) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f.ID == "" {
		f.ID = primitive.NewObjectID().Hex()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	cp := *f
	m.events = append(m.events, &cp)
	return f.ID, nil
}

func (m *MemoryRepo) List(_ context.Context) ([]*feedback.Feedback, error) {
	return m.filter(func(*feedback.Feedback) bool { return true }), nil
}

func (m *MemoryRepo) ByResource(_ context.Context, resourceID string) ([]*feedback.Feedback, error) {
	return m.filter(func(f *feedback.Feedback) bool { return f.ResourceID == resourceID }), nil
}

func (m *MemoryRepo) Stats(ctx context.Context, resourceID string) (feedback.Stats, error) {
	events, _ := m.ByResource(ctx, resourceID)
	return Summarize(events), nil
}

func (m *MemoryRepo) filter(keep func(*feedback.Feedback) bool) []*feedback.Feedback {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*feedback.Feedback{}
	for _, f := range m.events {
		if keep(f) {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out
}

// Summarize computes Stats over a set of events.
func Summarize(events []*feedback.Feedback) feedback.Stats {
	var s feedback.Stats
	sum := 0
	for _, f := range events {
		s.TotalFeedback++
		if f.IsView() {
			s.ViewCount++
			continue
		}
		s.RatingCount++
		sum += f.Rating
		if f.Helpful {
			s.HelpfulCount++
		}
	}
	if s.RatingCount > 0 {
		s.AverageRating = float64(sum) / float64(s.RatingCount)
	}
	return s
}
