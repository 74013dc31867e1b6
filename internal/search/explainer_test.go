package search

import (
	"context"
	"errors"
	"testing"

	"github.com/loofsan/SF-Hacks2025/internal/ai/mock"
	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"github.com/stretchr/testify/require"
)

func TestTemplateExplanation(t *testing.T) {
	two := []*resource.Resource{
		{Name: "a", Category: "food"},
		{Name: "b", Category: "housing"},
		{Name: "c", Category: "food"},
	}
	text := TemplateExplanation(two)
	require.Contains(t, text, "food and housing")
	require.Equal(t, "Found 3 resources that might help with your needs. These include food and housing.", text)

	require.Equal(t, "Found 0 resources that might help with your needs. These include various services.", TemplateExplanation(nil))

	require.Contains(t, TemplateExplanation([]*resource.Resource{{Type: "Shelter"}}), "include shelter.")

	three := []*resource.Resource{{Type: "Food Bank"}, {Type: "Shelter"}, {Category: "healthcare"}, {Type: "shelter"}}
	require.Contains(t, TemplateExplanation(three), "food bank, shelter, and healthcare.")
}

func TestExplainSelection(t *testing.T) {
	ctx := context.Background()
	results := []*resource.Resource{{Name: "Mission Food Bank", Category: "food", Address: "1 Mission St"}}

	gen := mock.NewMockGenerator("  Here are some places to get groceries today.  ")
	e := NewExplainer(gen)

	text := e.Explain(ctx, results, Outcome{Source: SourceAI, Interpretation: Interpretation{Categories: []string{"food"}}})
	require.Equal(t, "Here are some places to get groceries today.", text)
	require.Contains(t, gen.Prompts()[0], "Mission Food Bank")
	require.Contains(t, gen.Prompts()[0], "1 Mission St")

	text = e.Explain(ctx, results, Outcome{Source: SourceFallback})
	require.Equal(t, TemplateExplanation(results), text)
	require.Equal(t, 1, gen.CallCount())

	failing := NewExplainer(&mock.MockGenerator{Err: errors.New("quota")})
	require.Equal(t, TemplateExplanation(results), failing.Explain(ctx, results, Outcome{Source: SourceAI}))

	empty := NewExplainer(mock.NewMockGenerator("   "))
	require.Equal(t, TemplateExplanation(results), empty.Explain(ctx, results, Outcome{Source: SourceAI}))

	require.Equal(t, TemplateExplanation(results), NewExplainer(nil).Explain(ctx, results, Outcome{Source: SourceAI}))
}
