package similar

import (
	"context"
	"errors"
	"testing"

	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"github.com/loofsan/SF-Hacks2025/internal/resource/repository"
	"github.com/stretchr/testify/require"
)

func create(t *testing.T, repo *repository.MemoryRepo, r *resource.Resource) string {
	t.Helper()
	if r.Address == "" {
		r.Address = "somewhere"
	}
	id, err := repo.Create(context.Background(), r)
	require.NoError(t, err)
	return id
}

func ids(rs []*resource.Resource) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestFindSimilarPhases(t *testing.T) {
	repo := repository.NewMemoryRepo()
	src := create(t, repo, &resource.Resource{Name: "src", Type: "Food Bank", Category: "food", Services: []string{"Groceries"},
		Description: "Weekly groceries and hot meals for families"})
	sameType := create(t, repo, &resource.Resource{Name: "same type", Type: "Food Bank", Category: "other"})
	sharedService := create(t, repo, &resource.Resource{Name: "shared service", Category: "other", Services: []string{"Groceries"}})
	textOnly := create(t, repo, &resource.Resource{Name: "text", Category: "employment", Description: "Hot meals after job training"})
	unrelated := create(t, repo, &resource.Resource{Name: "unrelated", Category: "housing", Description: "Beds"})

	m := NewMatcher(repo)
	got := m.FindSimilar(context.Background(), src, 3)
	require.Equal(t, []string{sameType, sharedService, textOnly}, ids(got))
	require.NotContains(t, ids(got), src)
	require.NotContains(t, ids(got), unrelated)

	got = m.FindSimilar(context.Background(), src, 1)
	require.Equal(t, []string{sameType}, ids(got))
}

func TestFindSimilarNeverReturnsSource(t *testing.T) {
	repo := repository.NewMemoryRepo()
	var all []string
	for i := 0; i < 6; i++ {
		all = append(all, create(t, repo, &resource.Resource{Name: "r", Type: "Shelter", Category: "housing",
			Description: "shelter beds shelter"}))
	}
	m := NewMatcher(repo)
	for _, id := range all {
		got := m.FindSimilar(context.Background(), id, 10)
		require.Len(t, got, 5)
		require.NotContains(t, ids(got), id)
	}
}

func TestFindSimilarStructuralShortfallUsesText(t *testing.T) {
	repo := repository.NewMemoryRepo()
	src := create(t, repo, &resource.Resource{Name: "bare", Description: "dental cleanings"})
	other := create(t, repo, &resource.Resource{Name: "clinic", Category: "healthcare", Description: "Low cost dental care"})

	got := NewMatcher(repo).FindSimilar(context.Background(), src, 0)
	require.Equal(t, []string{other}, ids(got))
}

func TestFindSimilarNoDescriptionSkipsText(t *testing.T) {
	repo := repository.NewMemoryRepo()
	src := create(t, repo, &resource.Resource{Name: "bare"})
	create(t, repo, &resource.Resource{Name: "other", Category: "food", Description: "bare"})

	got := NewMatcher(repo).FindSimilar(context.Background(), src, 3)
	require.Empty(t, got)
	require.NotNil(t, got)
}

type failingRepo struct {
	*repository.MemoryRepo
}

func (failingRepo) TextSearch(context.Context, string, []string, int) ([]*resource.Resource, error) {
	return nil, errors.New("text index missing")
}

func TestFindSimilarErrorsYieldEmpty(t *testing.T) {
	mem := repository.NewMemoryRepo()
	src := create(t, mem, &resource.Resource{Name: "src", Category: "food", Description: "soup"})
	create(t, mem, &resource.Resource{Name: "peer", Category: "food"})
	m := NewMatcher(failingRepo{mem})

	require.Empty(t, m.FindSimilar(context.Background(), src, 3))
	require.Empty(t, m.FindSimilar(context.Background(), "unknown-id", 3))
}

func TestClampLimit(t *testing.T) {
	require.Equal(t, DefaultLimit, clampLimit(0))
	require.Equal(t, DefaultLimit, clampLimit(-4))
	require.Equal(t, 7, clampLimit(7))
	require.Equal(t, MaxLimit, clampLimit(500))
}
