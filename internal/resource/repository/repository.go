package repository

import (
	"context"
	"errors"

	"github.com/loofsan/SF-Hacks2025/internal/resource"
)

var (
	ErrNotFound = errors.New("resource not found")
)

// Field names a queryable resource attribute. Values match the stored
// document keys.
type Field string

const (
	FieldName          Field = "name"
	FieldType          Field = "type"
	FieldCategory      Field = "category"
	FieldSubcategories Field = "subcategories"
	FieldServices      Field = "services"
	FieldDescription   Field = "description"
	FieldAddress       Field = "address"
)

type Op int

const (
	// OpEquals matches an exact value, or any equal element of an array field.
	OpEquals Op = iota
	// OpIn matches when the value, or any element of an array field, is one of Values.
	OpIn
	// OpContains is a case-insensitive literal substring match.
	OpContains
)

// Condition is a single predicate over one field.
type Condition struct {
	Field  Field
	Op     Op
	Values []string
}

func Equals(f Field, v string) Condition {
	return Condition{Field: f, Op: OpEquals, Values: []string{v}}
}

func In(f Field, vs ...string) Condition { return Condition{Field: f, Op: OpIn, Values: vs} }

func Contains(f Field, v string) Condition {
	return Condition{Field: f, Op: OpContains, Values: []string{v}}
}

// Query selects resources matching any of AnyOf. An empty AnyOf matches
// every resource. Limit <= 0 means unlimited.
type Query struct {
	AnyOf      []Condition
	ExcludeIDs []string
	Limit      int
}

// Repository is the resource store used by the services.
type Repository interface {
	Create(ctx context.Context, r *resource.Resource) (string, error)
	Get(ctx context.Context, id string) (*resource.Resource, error)
	List(ctx context.Context) ([]*resource.Resource, error)
	Find(ctx context.Context, q Query) ([]*resource.Resource, error)
	// TextSearch ranks resources by full-text relevance to text.
	TextSearch(ctx context.Context, text string, excludeIDs []string, limit int) ([]*resource.Resource, error)
	// Near returns resources within maxMeters of the point, nearest first.
	Near(ctx context.Context, lon, lat, maxMeters float64) ([]*resource.Resource, error)
	Replace(ctx context.Context, r *resource.Resource) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}
