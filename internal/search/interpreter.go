package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loofsan/SF-Hacks2025/internal/ai"
	"github.com/loofsan/SF-Hacks2025/internal/category"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
	"github.com/loofsan/SF-Hacks2025/pkg/metrics"
)

// CategoryLister supplies the taxonomy included in the interpretation prompt.
type CategoryLister interface {
	List(ctx context.Context) ([]category.Category, error)
}

// InterpretationCache remembers model interpretations by query text. Only
// model-sourced interpretations are stored.
type InterpretationCache interface {
	Get(ctx context.Context, query string) (*Interpretation, error)
	Put(ctx context.Context, query string, in Interpretation) error
}

// Interpreter turns free text into an Outcome. It never returns an error.
type Interpreter struct {
	gen   ai.TextGenerator
	cats  CategoryLister
	cache InterpretationCache
}

// NewInterpreter builds an interpreter. A nil generator means every query
// goes straight to the local classifier.
func NewInterpreter(gen ai.TextGenerator, cats CategoryLister) *Interpreter {
	return &Interpreter{gen: gen, cats: cats}
}

// WithCache returns the interpreter with c consulted before the model.
func (i *Interpreter) WithCache(c InterpretationCache) *Interpreter {
	i.cache = c
	return i
}

func (i *Interpreter) Interpret(ctx context.Context, query string) Outcome {
	if hit := i.cached(ctx, query); hit != nil {
		return Select(query, hit, nil)
	}
	parsed, err := i.ask(ctx, query)
	out := Select(query, parsed, err)
	if out.Source == SourceAI && i.cache != nil {
		if err := i.cache.Put(ctx, query, out.Interpretation); err != nil {
			logger.Debugf("interpretation cache put: %v", err)
		}
	}
	if out.Source == SourceFallback {
		metrics.InterpreterFallbacks.WithLabelValues(string(out.Reason)).Inc()
		if err != nil && out.Reason != ReasonUnavailable {
			logger.Warnf("interpreter fallback (%s): %v", out.Reason, err)
		}
	}
	return out
}

func (i *Interpreter) cached(ctx context.Context, query string) *Interpretation {
	if i.cache == nil || i.gen == nil {
		return nil
	}
	hit, err := i.cache.Get(ctx, query)
	if err != nil {
		logger.Debugf("interpretation cache get: %v", err)
		return nil
	}
	return hit
}

func (i *Interpreter) ask(ctx context.Context, query string) (*Interpretation, error) {
	if i.gen == nil {
		return nil, ai.ErrNotConfigured
	}
	text, err := i.gen.Generate(ctx, interpretPrompt(query, i.loadCategories(ctx)))
	if err != nil {
		return nil, err
	}
	raw, err := ai.ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	var reply modelInterpretation
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	in := reply.interpretation()
	return &in, nil
}

// loadCategories never fails the search: a store error yields an empty table.
func (i *Interpreter) loadCategories(ctx context.Context) []category.Category {
	if i.cats == nil {
		return nil
	}
	cats, err := i.cats.List(ctx)
	if err != nil {
		logger.Warnf("interpreter: load categories: %v", err)
		return nil
	}
	return cats
}

// modelInterpretation is the reply shape requested in the prompt. Models
// sometimes answer in camelCase, so both spellings are accepted.
type modelInterpretation struct {
	Categories             []string `json:"categories"`
	Subcategories          []string `json:"subcategories"`
	Keywords               []string `json:"keywords"`
	Location               string   `json:"location"`
	RephrasedQuery         string   `json:"rephrased_query"`
	RephrasedQueryAlt      string   `json:"rephrasedQuery"`
	SpecialRequirements    []string `json:"special_requirements"`
	SpecialRequirementsAlt []string `json:"specialRequirements"`
}

func (m modelInterpretation) interpretation() Interpretation {
	in := Interpretation{
		Categories:          m.Categories,
		Subcategories:       m.Subcategories,
		Keywords:            m.Keywords,
		Location:            m.Location,
		RephrasedQuery:      m.RephrasedQuery,
		SpecialRequirements: m.SpecialRequirements,
	}
	if in.RephrasedQuery == "" {
		in.RephrasedQuery = m.RephrasedQueryAlt
	}
	if len(in.SpecialRequirements) == 0 {
		in.SpecialRequirements = m.SpecialRequirementsAlt
	}
	return in
}

type promptCategory struct {
	Name          string   `json:"name"`
	DisplayName   string   `json:"displayName"`
	Subcategories []string `json:"subcategories"`
	Keywords      []string `json:"keywords"`
}

func interpretPrompt(query string, cats []category.Category) string {
	table := make([]promptCategory, 0, len(cats))
	for _, c := range cats {
		table = append(table, promptCategory{Name: c.Name, DisplayName: c.DisplayName, Subcategories: c.Subcategories, Keywords: c.Keywords})
	}
	catJSON, _ := json.MarshalIndent(table, "", "  ")

	var b strings.Builder
	b.WriteString("You help residents of San Francisco find community services such as food, housing, healthcare and employment support.\n")
	b.WriteString("Read the request below and describe what the person is looking for.\n\n")
	b.WriteString("Service categories:\n")
	b.Write(catJSON)
	b.WriteString("\n\nRequest: ")
	b.WriteString(quoteJSON(query))
	b.WriteString("\n\nAnswer with a single JSON object and nothing else, using exactly these keys:\n")
	b.WriteString(`{
  "categories": ["category names copied from the list above"],
  "subcategories": ["subcategory names copied from the list above"],
  "keywords": ["short terms that narrow the search"],
  "location": "neighborhood or address mentioned, or an empty string",
  "rephrased_query": "one sentence stating the core need",
  "special_requirements": ["languages, accessibility or other constraints"]
}`)
	return b.String()
}

func quoteJSON(s string) string {
	q, _ := json.Marshal(s)
	return string(q)
}
