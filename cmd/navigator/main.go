package main

import (
	"os"

	"github.com/loofsan/SF-Hacks2025/pkg/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "navigator",
		Usage: "Community resource navigator API",
		Commands: []*cli.Command{
			serveCommand,
			seedCommand,
			checkDBCommand,
			exportCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Logger().WithError(err).Fatal("navigator failed")
	}
}
