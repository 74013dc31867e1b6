package main

import (
	"context"
	"fmt"

	"github.com/loofsan/SF-Hacks2025/internal/app"
	"github.com/loofsan/SF-Hacks2025/internal/storage"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
	"github.com/urfave/cli/v2"
)

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "Write a JSON snapshot of categories and resources to object storage",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "key",
			Usage:    "Snapshot name",
			Required: true,
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := c.Context
		store, err := snapshotStore(ctx, cfg)
		if err != nil {
			return err
		}
		stores, closeStores, err := openStores(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStores()

		key, err := export(ctx, stores, store, c.String("key"))
		if err != nil {
			return err
		}
		logger.Infof("snapshot written to %s/%s", cfg.Storage.Bucket, key)
		return nil
	},
}

func export(ctx context.Context, s *app.Stores, store *storage.SnapshotStore, name string) (string, error) {
	cats, err := s.Categories.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list categories: %w", err)
	}
	resources, err := s.Resources.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list resources: %w", err)
	}
	return store.Save(ctx, name, &storage.Snapshot{Categories: cats, Resources: resources})
}
