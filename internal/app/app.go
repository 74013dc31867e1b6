package app

import (
	"context"

	"github.com/loofsan/SF-Hacks2025/internal/ai"
	catrepo "github.com/loofsan/SF-Hacks2025/internal/category/repository"
	"github.com/loofsan/SF-Hacks2025/internal/database"
	fbrepo "github.com/loofsan/SF-Hacks2025/internal/feedback/repository"
	fbsvc "github.com/loofsan/SF-Hacks2025/internal/feedback/service"
	resrepo "github.com/loofsan/SF-Hacks2025/internal/resource/repository"
	ressvc "github.com/loofsan/SF-Hacks2025/internal/resource/service"
	"github.com/loofsan/SF-Hacks2025/internal/search"
	logrepo "github.com/loofsan/SF-Hacks2025/internal/searchlog/repository"
	"github.com/loofsan/SF-Hacks2025/internal/seed"
	"github.com/loofsan/SF-Hacks2025/internal/similar"
	"go.mongodb.org/mongo-driver/mongo"
)

// Stores groups the four collections the navigator reads and writes.
type Stores struct {
	Resources  resrepo.Repository
	Categories catrepo.Repository
	SearchLogs logrepo.Repository
	Feedback   fbrepo.Repository
	// Ping checks the backing store. Nil for the in-memory stores.
	Ping func(ctx context.Context) error
}

// MemoryStores returns in-process stores. With withSeed set they are
// loaded with the reference data.
func MemoryStores(ctx context.Context, withSeed bool) (*Stores, error) {
	s := &Stores{
		Resources:  resrepo.NewMemoryRepo(),
		Categories: catrepo.NewMemoryRepo(),
		SearchLogs: logrepo.NewMemoryRepo(),
		Feedback:   fbrepo.NewMemoryRepo(),
	}
	if withSeed {
		if _, err := seed.Seed(ctx, s.Categories, s.Resources, seed.Options{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MongoStores returns stores backed by the collections of db.
func MongoStores(db *mongo.Database) *Stores {
	return &Stores{
		Resources:  resrepo.NewMongoRepo(db.Collection(database.ResourcesCollection)),
		Categories: catrepo.NewMongoRepo(db.Collection(database.CategoriesCollection)),
		SearchLogs: logrepo.NewMongoRepo(db.Collection(database.SearchLogsCollection)),
		Feedback:   fbrepo.NewMongoRepo(db.Collection(database.FeedbackCollection)),
		Ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		},
	}
}

// App holds the services the HTTP layer is built from.
type App struct {
	Stores    *Stores
	Resources *ressvc.Service
	Search    *search.Service
	Similar   *similar.Matcher
	Feedback  *fbsvc.Service
}

// New wires the services over stores. A nil generator runs search with the
// local interpreter and templated explanations only. cache may be nil.
func New(stores *Stores, gen ai.TextGenerator, cache search.InterpretationCache) *App {
	resources := ressvc.New(stores.Resources)
	return &App{
		Stores:    stores,
		Resources: resources,
		Search: search.NewService(
			search.NewInterpreter(gen, stores.Categories).WithCache(cache),
			search.NewExecutor(stores.Resources),
			search.NewExplainer(gen),
			stores.SearchLogs,
		),
		Similar:  similar.NewMatcher(stores.Resources),
		Feedback: fbsvc.New(stores.Feedback, resources),
	}
}
