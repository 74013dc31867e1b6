package search

import (
	"context"
	"strings"

	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"github.com/loofsan/SF-Hacks2025/internal/resource/repository"
)

// categoryTypes lists the provider-type substrings that also count as a
// match for an interpreted category.
var categoryTypes = map[string][]string{
	resource.CategoryFood:       {"food bank", "meal", "pantry", "nutrition"},
	resource.CategoryHousing:    {"shelter", "housing", "homeless"},
	resource.CategoryHealthcare: {"health", "medical", "clinic", "therapy"},
	resource.CategoryEmployment: {"job", "career", "employment", "work"},
}

// keywordCategories is consulted by the keywords-only plan, in this order.
var keywordCategories = []struct {
	category string
	words    []string
}{
	{resource.CategoryFood, []string{"food", "hungry", "meal", "eat", "nutrition"}},
	{resource.CategoryHousing, []string{"shelter", "housing", "homeless", "stay", "sleep"}},
	{resource.CategoryHealthcare, []string{"health", "medical", "doctor", "sick", "dental"}},
	{resource.CategoryEmployment, []string{"job", "work", "employment", "career", "resume"}},
}

// PlanConditions builds the disjunction for an interpretation: category
// membership, the per-category type synonyms, and each keyword as a
// substring of name, description or services.
func PlanConditions(in Interpretation) []repository.Condition {
	var conds []repository.Condition
	if len(in.Categories) > 0 {
		conds = append(conds, repository.In(repository.FieldCategory, in.Categories...))
		seen := map[string]bool{}
		for _, c := range in.Categories {
			for _, t := range categoryTypes[c] {
				if seen[t] {
					continue
				}
				seen[t] = true
				conds = append(conds, repository.Contains(repository.FieldType, t))
			}
		}
	}
	for _, k := range in.Keywords {
		conds = append(conds,
			repository.Contains(repository.FieldName, k),
			repository.Contains(repository.FieldDescription, k),
			repository.Contains(repository.FieldServices, k),
		)
	}
	return conds
}

// KeywordConditions is the plan used when an interpretation carries no
// usable terms: each keyword may select a category and is matched against
// name, description, type and services.
func KeywordConditions(keywords []string) []repository.Condition {
	var conds []repository.Condition
	for _, k := range keywords {
		k = strings.ToLower(k)
		if c, ok := keywordCategory(k); ok {
			conds = append(conds, repository.Equals(repository.FieldCategory, c))
		}
		conds = append(conds,
			repository.Contains(repository.FieldName, k),
			repository.Contains(repository.FieldDescription, k),
			repository.Contains(repository.FieldType, k),
			repository.Contains(repository.FieldServices, k),
		)
	}
	return conds
}

func keywordCategory(k string) (string, bool) {
	for _, kc := range keywordCategories {
		if strings.Contains(k, kc.category) {
			return kc.category, true
		}
		for _, w := range kc.words {
			if w == k {
				return kc.category, true
			}
		}
	}
	return "", false
}

// KeywordSearchConditions matches one keyword against every text field a
// visitor would recognise.
func KeywordSearchConditions(keyword string) []repository.Condition {
	conds := make([]repository.Condition, 0, 6)
	for _, f := range []repository.Field{
		repository.FieldName, repository.FieldDescription, repository.FieldAddress,
		repository.FieldServices, repository.FieldType, repository.FieldCategory,
	} {
		conds = append(conds, repository.Contains(f, keyword))
	}
	return conds
}

// Executor runs search plans against the resource store.
type Executor struct {
	repo repository.Repository
}

func NewExecutor(repo repository.Repository) *Executor {
	return &Executor{repo: repo}
}

// Execute falls back to the raw-query keyword plan when the interpretation
// yields no conditions. No conditions at all returns every resource.
func (e *Executor) Execute(ctx context.Context, in Interpretation, query string) ([]*resource.Resource, error) {
	conds := PlanConditions(in)
	if len(conds) == 0 {
		conds = KeywordConditions(QueryKeywords(query))
	}
	return e.repo.Find(ctx, repository.Query{AnyOf: conds})
}

func (e *Executor) Keyword(ctx context.Context, keyword string) ([]*resource.Resource, error) {
	return e.repo.Find(ctx, repository.Query{AnyOf: KeywordSearchConditions(keyword)})
}
