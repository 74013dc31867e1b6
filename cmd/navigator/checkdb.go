package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/loofsan/SF-Hacks2025/internal/app"
	"github.com/urfave/cli/v2"
)

var checkDBCommand = &cli.Command{
	Name:  "check-db",
	Usage: "Print collection counts, category names and recent searches",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "recent",
			Usage: "Number of recent searches to show",
			Value: 5,
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, db, err := connectMongo(c.Context, cfg)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())
		return report(c.Context, c.App.Writer, app.MongoStores(db), c.Int("recent"))
	},
}

func report(ctx context.Context, w io.Writer, s *app.Stores, recent int) error {
	resources, err := s.Resources.Count(ctx)
	if err != nil {
		return fmt.Errorf("count resources: %w", err)
	}
	cats, err := s.Categories.List(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	searches, err := s.SearchLogs.Count(ctx)
	if err != nil {
		return fmt.Errorf("count search logs: %w", err)
	}

	names := make([]string, 0, len(cats))
	for _, cat := range cats {
		names = append(names, cat.Name)
	}
	fmt.Fprintf(w, "resources:  %d\n", resources)
	fmt.Fprintf(w, "categories: %d (%s)\n", len(cats), strings.Join(names, ", "))
	fmt.Fprintf(w, "searchlogs: %d\n", searches)

	if recent <= 0 {
		return nil
	}
	logs, err := s.SearchLogs.Recent(ctx, recent)
	if err != nil {
		return fmt.Errorf("recent searches: %w", err)
	}
	for _, l := range logs {
		fmt.Fprintf(w, "  %s  %-8s %3d  %q\n", l.CreatedAt.Format("2006-01-02 15:04"), l.InterpretationSource, l.ResultsCount, l.Query)
	}
	return nil
}
