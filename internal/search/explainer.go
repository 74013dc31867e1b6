package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loofsan/SF-Hacks2025/internal/ai"
	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
	"github.com/loofsan/SF-Hacks2025/pkg/metrics"
)

// Explainer writes the short summary shown above search results.
type Explainer struct {
	gen ai.TextGenerator
}

func NewExplainer(gen ai.TextGenerator) *Explainer {
	return &Explainer{gen: gen}
}

// Explain asks the model only when the interpretation itself came from the
// model; otherwise, or on any failure, it uses the template.
func (e *Explainer) Explain(ctx context.Context, results []*resource.Resource, out Outcome) string {
	if e.gen != nil && out.Source == SourceAI {
		text, err := e.gen.Generate(ctx, explainPrompt(results, out.Interpretation))
		text = strings.TrimSpace(text)
		if err == nil && text != "" {
			metrics.Explanations.WithLabelValues(string(SourceAI)).Inc()
			return text
		}
		if err != nil {
			logger.Warnf("explainer fallback: %v", err)
		}
	}
	metrics.Explanations.WithLabelValues(string(SourceFallback)).Inc()
	return TemplateExplanation(results)
}

// TemplateExplanation reports the result count and the distinct kinds of
// provider found.
func TemplateExplanation(results []*resource.Resource) string {
	return fmt.Sprintf("Found %d resources that might help with your needs. These include %s.", len(results), describeKinds(results))
}

// describeKinds joins the first-seen, lower-cased types (category when the
// type is empty) as English prose.
func describeKinds(results []*resource.Resource) string {
	var kinds []string
	seen := map[string]bool{}
	for _, r := range results {
		k := strings.ToLower(strings.TrimSpace(r.Type))
		if k == "" {
			k = strings.ToLower(strings.TrimSpace(r.Category))
		}
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		kinds = append(kinds, k)
	}
	switch len(kinds) {
	case 0:
		return "various services"
	case 1:
		return kinds[0]
	case 2:
		return kinds[0] + " and " + kinds[1]
	}
	return strings.Join(kinds[:len(kinds)-1], ", ") + ", and " + kinds[len(kinds)-1]
}

func explainPrompt(results []*resource.Resource, in Interpretation) string {
	summaries := make([]resource.Summary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, r.Summary())
	}
	resJSON, _ := json.MarshalIndent(summaries, "", "  ")
	inJSON, _ := json.Marshal(in)

	var b strings.Builder
	b.WriteString("You help residents of San Francisco find community services. Write a short, warm explanation of the search results below for the person who searched.\n\n")
	b.WriteString("What they asked for: ")
	b.Write(inJSON)
	fmt.Fprintf(&b, "\n\nResults (%d):\n", len(results))
	b.Write(resJSON)
	b.WriteString("\n\nIn three to five plain sentences: acknowledge the need with compassion, say what kinds of services were found, point out the closest matches, and suggest a next step such as calling ahead. If there are few or no results, suggest other ways to get help. Reply with the explanation text only.")
	return b.String()
}
