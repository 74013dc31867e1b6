package seed

import (
	"context"
	"testing"
	"time"

	catrepo "github.com/loofsan/SF-Hacks2025/internal/category/repository"
	"github.com/loofsan/SF-Hacks2025/internal/resource"
	resrepo "github.com/loofsan/SF-Hacks2025/internal/resource/repository"
	"github.com/stretchr/testify/require"
)

func TestSeedReplacesResources(t *testing.T) {
	ctx := context.Background()
	cats := catrepo.NewMemoryRepo()
	res := resrepo.NewMemoryRepo()
	_, err := res.Create(ctx, &resource.Resource{Name: "stale", Address: "x"})
	require.NoError(t, err)

	out, err := Seed(ctx, cats, res, Options{})
	require.NoError(t, err)
	require.Equal(t, Result{Categories: 4, Resources: 4}, out)

	list, err := res.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for _, r := range list {
		require.Equal(t, resource.StatusVerified, r.VerificationStatus)
		require.Len(t, r.Hours, 7)
		require.NotEqual(t, "stale", r.Name)
	}

	food, err := cats.Get(ctx, "food")
	require.NoError(t, err)
	require.Equal(t, "Food Assistance", food.DisplayName)
}

func TestSeedKeep(t *testing.T) {
	ctx := context.Background()
	cats := catrepo.NewMemoryRepo(Categories()[0])
	res := resrepo.NewMemoryRepo()

	out, err := Seed(ctx, cats, res, Options{Keep: true})
	require.NoError(t, err)
	require.Equal(t, 0, out.Categories)
	require.Equal(t, 4, out.Resources)

	n, err := cats.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = Seed(ctx, cats, res, Options{Keep: true})
	require.NoError(t, err)
	total, err := res.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 8, total)
}

func TestLoadRejectsInvalidBeforeClearing(t *testing.T) {
	ctx := context.Background()
	res := resrepo.NewMemoryRepo()
	_, err := res.Create(ctx, &resource.Resource{Name: "keep me", Address: "x"})
	require.NoError(t, err)

	_, err = Load(ctx, catrepo.NewMemoryRepo(), res, Categories(), []*resource.Resource{{Address: "no name"}}, Options{})
	require.ErrorIs(t, err, resource.ErrNameRequired)

	n, err := res.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestSampleHours(t *testing.T) {
	bank := Resources()[0]
	saturday := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "Today: 10:00 - 14:00", bank.TodayText(saturday))
	require.Equal(t, "Closed today", bank.TodayText(saturday.AddDate(0, 0, 1)))
}
