package service

import (
	"context"
	"errors"
	"testing"

	"github.com/loofsan/SF-Hacks2025/internal/feedback"
	"github.com/loofsan/SF-Hacks2025/internal/feedback/repository"
	"github.com/loofsan/SF-Hacks2025/internal/resource"
	rrepo "github.com/loofsan/SF-Hacks2025/internal/resource/repository"
	"github.com/stretchr/testify/require"
)

type failingRepo struct{ repository.Repository }

func (failingRepo) Create(context.Context, *feedback.Feedback) (string, error) {
	return "", errors.New("disk full")
}

func TestSubmitDefaults(t *testing.T) {
	svc := New(repository.NewMemoryRepo(), nil)
	f, recorded, err := svc.Submit(context.Background(), feedback.Submission{ResourceID: "r1", Rating: 4})
	require.NoError(t, err)
	require.True(t, recorded)
	require.True(t, f.Helpful)
	require.Len(t, f.SessionID, 21)
	require.NotEmpty(t, f.ID)

	no := false
	f, _, err = svc.Submit(context.Background(), feedback.Submission{ResourceID: "r1", Helpful: &no, SessionID: "s1"})
	require.NoError(t, err)
	require.False(t, f.Helpful)
	require.Equal(t, "s1", f.SessionID)
	require.True(t, f.IsView())
}

func TestSubmitValidation(t *testing.T) {
	svc := New(repository.NewMemoryRepo(), nil)
	for _, sub := range []feedback.Submission{
		{Rating: 3},
		{ResourceID: "r1", Rating: 6},
		{ResourceID: "r1", Rating: -1},
	} {
		_, _, err := svc.Submit(context.Background(), sub)
		require.ErrorIs(t, err, feedback.ErrInvalidFeedback)
	}
}

func TestSubmitSwallowsWriteFailure(t *testing.T) {
	svc := New(failingRepo{}, nil)
	f, recorded, err := svc.Submit(context.Background(), feedback.Submission{ResourceID: "r1", Rating: 5})
	require.NoError(t, err)
	require.False(t, recorded)
	require.Equal(t, 5, f.Rating)
}

func TestListFillsResourceNames(t *testing.T) {
	ctx := context.Background()
	resources := rrepo.NewMemoryRepo()
	id, err := resources.Create(ctx, &resource.Resource{Name: "Mission Food Bank", Address: "A"})
	require.NoError(t, err)

	svc := New(repository.NewMemoryRepo(), resources)
	_, _, err = svc.Submit(ctx, feedback.Submission{ResourceID: id, Rating: 5})
	require.NoError(t, err)
	_, _, err = svc.Submit(ctx, feedback.Submission{ResourceID: "deleted", Rating: 1})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Mission Food Bank", list[0].ResourceName)
	require.Empty(t, list[1].ResourceName)

	stats, err := svc.Stats(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 1, stats.RatingCount)
	require.InDelta(t, 5.0, stats.AverageRating, 1e-9)
}
