package main

import (
	"context"
	"fmt"

	"github.com/loofsan/SF-Hacks2025/internal/app"
	"github.com/loofsan/SF-Hacks2025/internal/config"
	"github.com/loofsan/SF-Hacks2025/internal/seed"
	"github.com/loofsan/SF-Hacks2025/internal/storage"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Load the reference categories and sample resources into MongoDB",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "keep",
			Usage: "Keep existing resources and only fill an empty category table",
		},
		&cli.StringFlag{
			Name:  "snapshot",
			Usage: "Load this snapshot from object storage instead of the built-in data",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := c.Context

		client, db, err := connectMongo(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())
		stores := app.MongoStores(db)
		opts := seed.Options{Keep: c.Bool("keep")}

		var res seed.Result
		if name := c.String("snapshot"); name != "" {
			snap, err := loadSnapshot(ctx, cfg, name)
			if err != nil {
				return err
			}
			res, err = seed.Load(ctx, stores.Categories, stores.Resources, snap.Categories, snap.Resources, opts)
			if err != nil {
				return fmt.Errorf("failed to load snapshot %q: %w", name, err)
			}
		} else {
			res, err = seed.Seed(ctx, stores.Categories, stores.Resources, opts)
			if err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}
		}
		logger.Infof("seed complete: %d categories, %d resources", res.Categories, res.Resources)
		return nil
	},
}

func snapshotStore(ctx context.Context, cfg *config.Config) (*storage.SnapshotStore, error) {
	objects, err := storage.NewMinIOStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open object storage: %w", err)
	}
	return storage.NewSnapshotStore(objects), nil
}

func loadSnapshot(ctx context.Context, cfg *config.Config, name string) (*storage.Snapshot, error) {
	store, err := snapshotStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return store.Load(ctx, name)
}
