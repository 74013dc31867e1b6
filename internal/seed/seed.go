package seed

import (
	"context"
	"fmt"

	"github.com/loofsan/SF-Hacks2025/internal/category"
	catrepo "github.com/loofsan/SF-Hacks2025/internal/category/repository"
	"github.com/loofsan/SF-Hacks2025/internal/resource"
	resrepo "github.com/loofsan/SF-Hacks2025/internal/resource/repository"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
)

// Options controls a seeding run.
type Options struct {
	// Keep leaves existing resources in place and only fills an empty
	// category table.
	Keep bool
}

// Result reports what a run wrote.
type Result struct {
	Categories int
	Resources  int
}

// Seed loads the built-in reference data.
func Seed(ctx context.Context, cats catrepo.Repository, res resrepo.Repository, opts Options) (Result, error) {
	return Load(ctx, cats, res, Categories(), Resources(), opts)
}

// Load writes the given categories and resources. Resources are validated
// before anything is cleared.
func Load(ctx context.Context, cats catrepo.Repository, res resrepo.Repository, categories []category.Category, resources []*resource.Resource, opts Options) (Result, error) {
	var out Result
	for i, r := range resources {
		if err := resource.Validate(r); err != nil {
			return out, fmt.Errorf("resource %d (%q): %w", i, r.Name, err)
		}
	}

	writeCats := true
	if opts.Keep {
		n, err := cats.Count(ctx)
		if err != nil {
			return out, fmt.Errorf("count categories: %w", err)
		}
		writeCats = n == 0
	} else {
		if err := res.DeleteAll(ctx); err != nil {
			return out, fmt.Errorf("clear resources: %w", err)
		}
	}
	if writeCats {
		if err := cats.ReplaceAll(ctx, categories); err != nil {
			return out, fmt.Errorf("write categories: %w", err)
		}
		out.Categories = len(categories)
	}

	for _, r := range resources {
		cp := *r
		cp.ID = ""
		if _, err := res.Create(ctx, &cp); err != nil {
			return out, fmt.Errorf("insert %q: %w", r.Name, err)
		}
		out.Resources++
	}
	logger.Infof("seeded %d categories and %d resources", out.Categories, out.Resources)
	return out, nil
}
