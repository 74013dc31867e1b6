// Package similar finds resources related to a given one: first by shared
// type, category, subcategories or services, then by full-text relevance to
// its description when the structural pass comes up short.
package similar

import (
	"context"
	"strings"

	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"github.com/loofsan/SF-Hacks2025/internal/resource/repository"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
	"github.com/loofsan/SF-Hacks2025/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const (
	DefaultLimit = 3
	MaxLimit     = 20
)

type Matcher struct {
	repo repository.Repository
}

func NewMatcher(repo repository.Repository) *Matcher {
	return &Matcher{repo: repo}
}

// FindSimilar returns up to limit resources other than id, structural
// matches first. Any failure, including an unknown id, yields an empty list.
func (m *Matcher) FindSimilar(ctx context.Context, id string, limit int) []*resource.Resource {
	out, err := m.find(ctx, id, clampLimit(limit))
	if err != nil {
		metrics.SimilarLookups.WithLabelValues("error").Inc()
		logger.With(logrus.Fields{"resource": id}).Warnf("similar lookup: %v", err)
		return []*resource.Resource{}
	}
	if len(out) == 0 {
		metrics.SimilarLookups.WithLabelValues("empty").Inc()
	} else {
		metrics.SimilarLookups.WithLabelValues("found").Inc()
	}
	return out
}

func (m *Matcher) find(ctx context.Context, id string, limit int) ([]*resource.Resource, error) {
	src, err := m.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	out := []*resource.Resource{}
	if conds := StructuralConditions(src); len(conds) > 0 {
		out, err = m.repo.Find(ctx, repository.Query{AnyOf: conds, ExcludeIDs: []string{src.ID}, Limit: limit})
		if err != nil {
			return nil, err
		}
	}
	if len(out) >= limit || strings.TrimSpace(src.Description) == "" {
		return capped(out, limit), nil
	}

	exclude := make([]string, 0, len(out)+1)
	exclude = append(exclude, src.ID)
	for _, r := range out {
		exclude = append(exclude, r.ID)
	}
	more, err := m.repo.TextSearch(ctx, src.Description, exclude, limit-len(out))
	if err != nil {
		return nil, err
	}
	return capped(append(out, more...), limit), nil
}

// StructuralConditions is the phase-one disjunction. Empty fields add no
// condition, so a bare resource has none.
func StructuralConditions(src *resource.Resource) []repository.Condition {
	var conds []repository.Condition
	if src.Type != "" {
		conds = append(conds, repository.Equals(repository.FieldType, src.Type))
	}
	if src.Category != "" {
		conds = append(conds, repository.Equals(repository.FieldCategory, src.Category))
	}
	if len(src.Subcategories) > 0 {
		conds = append(conds, repository.In(repository.FieldSubcategories, src.Subcategories...))
	}
	if len(src.Services) > 0 {
		conds = append(conds, repository.In(repository.FieldServices, src.Services...))
	}
	return conds
}

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultLimit
	case n > MaxLimit:
		return MaxLimit
	}
	return n
}

func capped(rs []*resource.Resource, n int) []*resource.Resource {
	if len(rs) > n {
		return rs[:n]
	}
	return rs
}
