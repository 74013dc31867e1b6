package repository

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory repository used when no MongoDB is configured
// and in unit tests. Results keep insertion order.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []string
	store map[string]*resource.Resource
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*resource.Resource)}
}

func (m *MemoryRepo) Create(_ context.Context, r *resource.Resource) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = primitive.NewObjectID().Hex()
	}
	stampCreate(r, time.Now())
	if _, ok := m.store[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	cp := *r
	m.store[r.ID] = &cp
	return r.ID, nil
}

func (m *MemoryRepo) Get(_ context.Context, id string) (*resource.Resource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.store[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(ctx context.Context) ([]*resource.Resource, error) {
	return m.Find(ctx, Query{})
}

func (m *MemoryRepo) Find(_ context.Context, q Query) ([]*resource.Resource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	excluded := toSet(q.ExcludeIDs)
	out := []*resource.Resource{}
	for _, id := range m.order {
		if excluded[id] {
			continue
		}
		r := m.store[id]
		if !matchesAny(r, q.AnyOf) {
			continue
		}
		cp := *r
		out = append(out, &cp)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}

// TextSearch approximates a MongoDB text index: documents are scored by how
// often the query terms occur in name, description, address, eligibility
// and services.
func (m *MemoryRepo) TextSearch(_ context.Context, text string, excludeIDs []string, limit int) ([]*resource.Resource, error) {
	terms := uniqueTerms(text)
	if len(terms) == 0 {
		return []*resource.Resource{}, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	excluded := toSet(excludeIDs)

	type scored struct {
		r     *resource.Resource
		score int
	}
	var hits []scored
	for _, id := range m.order {
		if excluded[id] {
			continue
		}
		r := m.store[id]
		counts := termCounts(r)
		score := 0
		for _, t := range terms {
			score += counts[t]
		}
		if score > 0 {
			cp := *r
			hits = append(hits, scored{r: &cp, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := []*resource.Resource{}
	for _, h := range hits {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, h.r)
	}
	return out, nil
}

func (m *MemoryRepo) Near(_ context.Context, lon, lat, maxMeters float64) ([]*resource.Resource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	type hit struct {
		r    *resource.Resource
		dist float64
	}
	var hits []hit
	for _, id := range m.order {
		r := m.store[id]
		if r.Location == nil || len(r.Location.Coordinates) != 2 {
			continue
		}
		d := Haversine(lon, lat, r.Location.Lon(), r.Location.Lat())
		if d <= maxMeters {
			cp := *r
			hits = append(hits, hit{r: &cp, dist: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	out := make([]*resource.Resource, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.r)
	}
	return out, nil
}

func (m *MemoryRepo) Replace(_ context.Context, r *resource.Resource) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[r.ID]; !ok {
		return ErrNotFound
	}
	r.UpdatedAt = time.Now()
	cp := *r
	m.store[r.ID] = &cp
	return nil
}

func (m *MemoryRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepo) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.store)), nil
}

func (m *MemoryRepo) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order = nil
	m.store = make(map[string]*resource.Resource)
	return nil
}

func stampCreate(r *resource.Resource, now time.Time) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	if r.LastUpdated.IsZero() {
		r.LastUpdated = now
	}
}

func matchesAny(r *resource.Resource, conds []Condition) bool {
	if len(conds) == 0 {
		return true
	}
	for _, c := range conds {
		if matches(r, c) {
			return true
		}
	}
	return false
}

func matches(r *resource.Resource, c Condition) bool {
	for _, v := range fieldValues(r, c.Field) {
		switch c.Op {
		case OpEquals, OpIn:
			for _, want := range c.Values {
				if v == want {
					return true
				}
			}
		case OpContains:
			for _, want := range c.Values {
				if strings.Contains(strings.ToLower(v), strings.ToLower(want)) {
					return true
				}
			}
		}
	}
	return false
}

func fieldValues(r *resource.Resource, f Field) []string {
	switch f {
	case FieldName:
		return []string{r.Name}
	case FieldType:
		return []string{r.Type}
	case FieldCategory:
		return []string{r.Category}
	case FieldDescription:
		return []string{r.Description}
	case FieldAddress:
		return []string{r.Address}
	case FieldSubcategories:
		return r.Subcategories
	case FieldServices:
		return r.Services
	}
	return nil
}

// textStopwords mirrors the common English words a text index ignores.
var textStopwords = toSet([]string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "in", "is",
	"it", "of", "on", "or", "that", "the", "to", "with",
})

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func uniqueTerms(text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range tokenize(text) {
		if textStopwords[t] || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func termCounts(r *resource.Resource) map[string]int {
	counts := map[string]int{}
	parts := append([]string{r.Name, r.Description, r.Address, r.Eligibility}, r.Services...)
	for _, p := range parts {
		for _, t := range tokenize(p) {
			counts[t]++
		}
	}
	return counts
}

func toSet(ids []string) map[string]bool {
	s := make(map[string]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

const earthRadiusMeters = 6371008.8

// Haversine returns the great-circle distance in meters between two
// longitude/latitude pairs.
func Haversine(lon1, lat1, lon2, lat2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}
