package analyze

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/article-analytics/models"
	"github.com/dtnitsch/article-analytics/pkg/dataset"
	"github.com/dtnitsch/article-analytics/pkg/db"
	"github.com/dtnitsch/article-analytics/pkg/histogram"
	"github.com/dtnitsch/article-analytics/pkg/report"
	"github.com/dtnitsch/article-analytics/pkg/stats"
)

// AnalyzeAction runs the full pipeline once: load both data sets, print
// the interaction statistics and render the histogram, print the catalog
// statistics, then record the run in the history database.
func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := resolveConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	logger.Info("loading data sets",
		"articles", config.ArticlesFile,
		"interactions", config.InteractionsFile)

	articles, interactions, encoder, err := dataset.Load(config.ArticlesFile, config.InteractionsFile)
	if err != nil {
		return err
	}
	logger.Info("data sets loaded",
		"article_rows", len(articles.Rows),
		"interaction_rows", len(interactions.Rows),
		"users", encoder.Len())

	// Part I: per-user interaction distribution
	counts := stats.UserInteractionCounts(interactions)
	summary := stats.Summarize(counts)
	report.PrintInteractionSummary(os.Stdout, summary)

	plotPath, err := histogram.Render(counts, summary, config.PlotsDir)
	if err != nil {
		return err
	}
	logger.Info("histogram saved", "path", plotPath)

	// Part II: catalog statistics
	deduped := stats.DeduplicateArticles(articles)
	joined := stats.LeftJoin(interactions, deduped)
	ranking := stats.RankArticles(interactions)
	articleSummary, err := stats.SummarizeArticles(deduped, joined, ranking, interactions)
	if err != nil {
		return err
	}
	report.PrintArticleSummary(os.Stdout, articleSummary)

	if c.Bool("no-history") {
		return nil
	}

	database, err := db.Open(config.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	runID, err := database.InsertRun(&db.Run{
		ArticlesFile:             config.ArticlesFile,
		InteractionsFile:         config.InteractionsFile,
		InteractionCount:         articleSummary.TotalInteractions,
		UniqueUsers:              articleSummary.UniqueUsers,
		MedianInteractions:       summary.Median,
		MeanInteractions:         summary.Mean,
		MaxInteractions:          summary.Max,
		UniqueArticles:           articleSummary.UniqueArticles,
		UniqueArticlesInteracted: articleSummary.UniqueArticlesInteracted,
		MostViewedArticleID:      articleSummary.MostViewedArticleID,
		MostViewedArticleViews:   articleSummary.MostViewedArticleViews,
		HistogramPath:            plotPath,
	})
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	logger.Info("run recorded", "run_id", runID, "db", database.Path())

	return nil
}

// resolveConfig merges the optional YAML config file with CLI flag
// overrides. Flags win over file values.
func resolveConfig(c *cli.Context) (*models.Config, error) {
	config := models.DefaultConfig()
	if c.IsSet("config") {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if c.IsSet("articles") {
		config.ArticlesFile = c.String("articles")
	}
	if c.IsSet("interactions") {
		config.InteractionsFile = c.String("interactions")
	}
	if c.IsSet("plots-dir") {
		config.PlotsDir = c.String("plots-dir")
	}
	if c.IsSet("db") {
		config.HistoryDB = c.String("db")
	}

	return config, nil
}
