package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"github.com/loofsan/SF-Hacks2025/internal/resource/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = repository.ErrNotFound
)

// DefaultNearbyMeters is the radius used when a nearby lookup gives none.
const DefaultNearbyMeters = 5000

// Service holds the resource business operations used by the handler layer.
type Service struct {
	repo repository.Repository
	now  func() time.Time
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() *Service {
	return New(repository.NewMemoryRepo())
}

// NewMongoService returns a Service backed by a MongoDB collection.
func NewMongoService(col *mongo.Collection) *Service {
	return New(repository.NewMongoRepo(col))
}

// Repo exposes the underlying store to the search and similarity components.
func (s *Service) Repo() repository.Repository { return s.repo }

// Submit stores a public submission. The moderation state is always pending
// regardless of what the client sent.
func (s *Service) Submit(ctx context.Context, in *resource.Incoming) (*resource.Resource, error) {
	r := resource.Normalize(in)
	r.ID = ""
	now := s.now()
	r.VerificationStatus = resource.StatusPending
	r.SubmittedAt = &now
	r.LastUpdated = now
	if err := resource.ValidateSubmission(r); err != nil {
		return nil, err
	}
	if _, err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Create stores a resource as-is after validation. Used by seeding.
func (s *Service) Create(ctx context.Context, r *resource.Resource) (string, error) {
	if r.VerificationStatus == "" {
		r.VerificationStatus = resource.StatusPending
	}
	if err := resource.Validate(r); err != nil {
		return "", err
	}
	return s.repo.Create(ctx, r)
}

func (s *Service) Get(ctx context.Context, id string) (*resource.Resource, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*resource.Resource, error) {
	return s.repo.List(ctx)
}

func (s *Service) ByCategory(ctx context.Context, category string) ([]*resource.Resource, error) {
	return s.repo.Find(ctx, repository.Query{AnyOf: []repository.Condition{
		repository.Equals(repository.FieldCategory, strings.ToLower(category)),
	}})
}

func (s *Service) BySubcategory(ctx context.Context, sub string) ([]*resource.Resource, error) {
	return s.repo.Find(ctx, repository.Query{AnyOf: []repository.Condition{
		repository.Equals(repository.FieldSubcategories, sub),
	}})
}

// Nearby returns resources within maxMeters of the point, nearest first.
// A non-positive radius uses DefaultNearbyMeters.
func (s *Service) Nearby(ctx context.Context, lon, lat, maxMeters float64) ([]*resource.Resource, error) {
	if err := resource.ValidateLonLat(lon, lat); err != nil {
		return nil, err
	}
	if maxMeters <= 0 {
		maxMeters = DefaultNearbyMeters
	}
	return s.repo.Near(ctx, lon, lat, maxMeters)
}

// Update applies an administrative patch and re-validates the result.
func (s *Service) Update(ctx context.Context, id string, p resource.Patch) (*resource.Resource, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(r)
	if err := resource.Validate(r); err != nil {
		return nil, err
	}
	r.LastUpdated = s.now()
	if err := s.repo.Replace(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// IsNotFound reports whether err means the resource does not exist.
func IsNotFound(err error) bool { return errors.Is(err, repository.ErrNotFound) }
