package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/article-analytics/internal/analyze"
	"github.com/dtnitsch/article-analytics/internal/runs"
	"github.com/dtnitsch/article-analytics/models"
)

func main() {
	app := &cli.App{
		Name:  "article-analytics",
		Usage: "exploratory statistics over an article catalog and its user interaction log",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "run the full analysis once: load, report, plot, record",
				Action: analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Usage: "YAML config file"},
					&cli.StringFlag{Name: "articles", Value: models.DefaultArticlesFile, Usage: "article catalog CSV"},
					&cli.StringFlag{Name: "interactions", Value: models.DefaultInteractionsFile, Usage: "user-article interaction log CSV"},
					&cli.StringFlag{Name: "plots-dir", Value: models.DefaultPlotsDir, Usage: "directory for generated plots"},
					&cli.StringFlag{Name: "db", Usage: "history database path (default: next to the binary)"},
					&cli.BoolFlag{Name: "no-history", Usage: "skip recording the run in the history database"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
			},
			{
				Name:   "runs",
				Usage:  "list recorded analysis runs",
				Action: runs.RunsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "history database path (default: next to the binary)"},
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum number of runs to list"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
