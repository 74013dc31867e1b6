package repository

import (
	"context"
	"testing"

	"github.com/loofsan/SF-Hacks2025/internal/searchlog"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoAppendOnly(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	for _, q := range []string{"food", "shelter", "jobs"} {
		id, err := r.Create(ctx, &searchlog.SearchLog{Query: q, SessionID: "s1"})
		require.NoError(t, err)
		require.NotEmpty(t, id)
	}

	n, err := r.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	recent, err := r.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "jobs", recent[0].Query)
	require.Equal(t, "shelter", recent[1].Query)
	require.False(t, recent[0].CreatedAt.IsZero())
}
