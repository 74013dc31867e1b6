package main

import (
	"context"
	"fmt"

	"github.com/loofsan/SF-Hacks2025/internal/app"
	"github.com/loofsan/SF-Hacks2025/internal/config"
	"github.com/loofsan/SF-Hacks2025/internal/database"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.Log.Level)
	logger.SetFormat(cfg.Log.Format)
	return cfg, nil
}

// connectMongo opens the configured database and makes sure the indexes exist.
func connectMongo(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.MongoDB.URI == "" {
		return nil, nil, fmt.Errorf("MONGODB_URI is not set")
	}
	client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5, func(attempt int, err error) {
		logger.Warnf("mongo connect attempt %d failed: %v", attempt, err)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db := client.Database(cfg.MongoDB.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)
	return client, db, nil
}

// openStores returns Mongo-backed stores when a URI is configured and seeded
// in-memory stores otherwise. The returned func releases the connection.
func openStores(ctx context.Context, cfg *config.Config) (*app.Stores, func(), error) {
	if cfg.MongoDB.URI == "" {
		logger.Warn("MONGODB_URI not set, using in-memory stores with sample data")
		stores, err := app.MemoryStores(ctx, true)
		return stores, func() {}, err
	}
	client, db, err := connectMongo(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return app.MongoStores(db), func() { _ = client.Disconnect(context.Background()) }, nil
}
