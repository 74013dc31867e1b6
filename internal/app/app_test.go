package app

import (
	"context"
	"testing"

	"github.com/loofsan/SF-Hacks2025/internal/ai/mock"
	"github.com/loofsan/SF-Hacks2025/internal/feedback"
	"github.com/loofsan/SF-Hacks2025/internal/search"
	"github.com/stretchr/testify/require"
)

func TestMemoryStores(t *testing.T) {
	ctx := context.Background()
	empty, err := MemoryStores(ctx, false)
	require.NoError(t, err)
	n, err := empty.Resources.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Nil(t, empty.Ping)

	seeded, err := MemoryStores(ctx, true)
	require.NoError(t, err)
	n, err = seeded.Resources.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 4, n)
}

func TestNewWiresModelIntoSearch(t *testing.T) {
	ctx := context.Background()
	stores, err := MemoryStores(ctx, true)
	require.NoError(t, err)

	gen := mock.NewMockGenerator(`{"categories":["healthcare"],"keywords":[],"rephrased_query":"free clinic"}`)
	a := New(stores, gen, nil)

	resp, err := a.Search.Search(ctx, search.Request{Query: "I feel sick"})
	require.NoError(t, err)
	require.Equal(t, search.SourceAI, resp.Interpretation.Source)
	require.Len(t, resp.Resources, 1)
	require.Equal(t, "Tenderloin Health Clinic", resp.Resources[0].Name)
	require.Equal(t, 2, gen.CallCount())

	_, recorded, err := a.Feedback.Submit(ctx, feedback.Submission{ResourceID: resp.Resources[0].ID, Rating: 5})
	require.NoError(t, err)
	require.True(t, recorded)
	list, err := a.Feedback.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Tenderloin Health Clinic", list[0].ResourceName)
}
