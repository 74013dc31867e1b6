package search

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/loofsan/SF-Hacks2025/internal/ai"
	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"github.com/loofsan/SF-Hacks2025/internal/searchlog"
)

// ErrMalformedResponse marks a model reply that held JSON of the wrong shape.
var ErrMalformedResponse = errors.New("search: malformed interpretation")

// Interpretation is the structured reading of a free-text query.
type Interpretation struct {
	Categories          []string `json:"categories"`
	Subcategories       []string `json:"subcategories"`
	Keywords            []string `json:"keywords"`
	Location            string   `json:"location"`
	RephrasedQuery      string   `json:"rephrasedQuery"`
	SpecialRequirements []string `json:"specialRequirements"`
}

// Source records which path produced an interpretation or explanation.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// FallbackReason says why the local classifier was used.
type FallbackReason string

const (
	ReasonUnavailable FallbackReason = "unavailable"
	ReasonError       FallbackReason = "error"
	ReasonMalformed   FallbackReason = "malformed"
)

// Outcome is an interpretation tagged with the path that produced it.
type Outcome struct {
	Interpretation
	Source Source         `json:"source"`
	Reason FallbackReason `json:"fallbackReason,omitempty"`
}

// Select is the merge rule between the model path and the local
// classifier: a model interpretation without error wins, anything else
// falls back. The result is always structurally complete.
func Select(query string, parsed *Interpretation, err error) Outcome {
	if err == nil && parsed != nil {
		return Outcome{Interpretation: parsed.clean(query), Source: SourceAI}
	}
	return Outcome{Interpretation: Fallback(query), Source: SourceFallback, Reason: reasonFor(err)}
}

func reasonFor(err error) FallbackReason {
	switch {
	case err == nil, errors.Is(err, ai.ErrNotConfigured):
		return ReasonUnavailable
	case errors.Is(err, ai.ErrNoJSON), errors.Is(err, ErrMalformedResponse):
		return ReasonMalformed
	}
	return ReasonError
}

// clean lower-cases categories, drops blanks and duplicates, and never
// leaves a nil slice or an empty rephrasing.
func (in Interpretation) clean(query string) Interpretation {
	out := Interpretation{
		Categories:          dedupe(in.Categories, true),
		Subcategories:       dedupe(in.Subcategories, false),
		Keywords:            dedupe(in.Keywords, false),
		Location:            strings.TrimSpace(in.Location),
		RephrasedQuery:      strings.TrimSpace(in.RephrasedQuery),
		SpecialRequirements: dedupe(in.SpecialRequirements, false),
	}
	if out.RephrasedQuery == "" {
		out.RephrasedQuery = query
	}
	return out
}

// Processed converts the interpretation to its audit-log form.
func (in Interpretation) Processed() searchlog.ProcessedQuery {
	return searchlog.ProcessedQuery{
		Categories:          in.Categories,
		Subcategories:       in.Subcategories,
		Keywords:            in.Keywords,
		Location:            in.Location,
		RephrasedQuery:      in.RephrasedQuery,
		SpecialRequirements: in.SpecialRequirements,
	}
}

var fallbackTriggers = []struct {
	category string
	words    []string
}{
	{resource.CategoryFood, []string{"food", "hungry", "meal"}},
	{resource.CategoryHousing, []string{"house", "home", "shelter", "homeless"}},
	{resource.CategoryHealthcare, []string{"health", "doctor", "medical", "sick"}},
	{resource.CategoryEmployment, []string{"job", "work", "employ", "career"}},
}

var neighborhoods = []string{
	"mission", "tenderloin", "sunset", "richmond", "bayview",
	"marina", "haight", "castro", "nob hill", "downtown",
}

var stopwords = map[string]bool{
	"help": true, "need": true, "find": true, "looking": true, "where": true, "what": true,
}

// Fallback classifies a query locally with fixed trigger substrings. It is
// total: every input, including the empty string, yields a complete
// interpretation, and no category signal means all four categories.
func Fallback(query string) Interpretation {
	lower := strings.ToLower(query)

	cats := []string{}
	for _, t := range fallbackTriggers {
		for _, w := range t.words {
			if strings.Contains(lower, w) {
				cats = append(cats, t.category)
				break
			}
		}
	}
	if len(cats) == 0 {
		cats = append(cats, resource.KnownCategories...)
	}

	location := ""
	for _, n := range neighborhoods {
		if strings.Contains(lower, n) {
			location = n
			break
		}
	}

	return Interpretation{
		Categories:          cats,
		Subcategories:       []string{},
		Keywords:            QueryKeywords(query),
		Location:            location,
		RephrasedQuery:      query,
		SpecialRequirements: []string{},
	}
}

// QueryKeywords splits a query on whitespace into lower-cased tokens longer
// than three characters, trimming surrounding punctuation and dropping
// stopwords and repeats.
func QueryKeywords(query string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		tok = strings.TrimFunc(tok, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		if utf8.RuneCountInString(tok) <= 3 || stopwords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

func dedupe(in []string, lower bool) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		if lower {
			s = strings.ToLower(s)
		}
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
