package service

import (
	"context"
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/feedback"
	"github.com/loofsan/SF-Hacks2025/internal/feedback/repository"
	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"github.com/loofsan/SF-Hacks2025/pkg/ids"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
	"github.com/loofsan/SF-Hacks2025/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// ResourceLookup resolves resource names for the feedback listing.
type ResourceLookup interface {
	Get(ctx context.Context, id string) (*resource.Resource, error)
}

type Service struct {
	repo      repository.Repository
	resources ResourceLookup
	now       func() time.Time
}

func New(repo repository.Repository, resources ResourceLookup) *Service {
	return &Service{repo: repo, resources: resources, now: time.Now}
}

// Submit validates and records one event. A failed write is logged and
// reported through recorded=false; the caller sees no error for it.
func (s *Service) Submit(ctx context.Context, sub feedback.Submission) (*feedback.Feedback, bool, error) {
	if err := sub.Validate(); err != nil {
		return nil, false, err
	}
	helpful := true
	if sub.Helpful != nil {
		helpful = *sub.Helpful
	}
	f := &feedback.Feedback{
		ResourceID: sub.ResourceID,
		Rating:     sub.Rating,
		Helpful:    helpful,
		Comment:    sub.Comment,
		SessionID:  ids.OrNew(sub.SessionID),
		CreatedAt:  s.now(),
	}
	if _, err := s.repo.Create(ctx, f); err != nil {
		metrics.WriteFailures.WithLabelValues("feedbacks").Inc()
		logger.With(logrus.Fields{"resource_id": f.ResourceID, "session_id": f.SessionID}).
			Warnf("feedback not recorded: %v", err)
		return f, false, nil
	}
	return f, true, nil
}

// List returns every event with resource names filled in for resources
// that still exist.
func (s *Service) List(ctx context.Context) ([]*feedback.Feedback, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.resources == nil {
		return list, nil
	}
	names := map[string]string{}
	for _, f := range list {
		name, ok := names[f.ResourceID]
		if !ok {
			if r, err := s.resources.Get(ctx, f.ResourceID); err == nil {
				name = r.Name
			}
			names[f.ResourceID] = name
		}
		f.ResourceName = name
	}
	return list, nil
}

func (s *Service) ByResource(ctx context.Context, resourceID string) ([]*feedback.Feedback, error) {
	return s.repo.ByResource(ctx, resourceID)
}

func (s *Service) Stats(ctx context.Context, resourceID string) (feedback.Stats, error) {
	return s.repo.Stats(ctx, resourceID)
}
