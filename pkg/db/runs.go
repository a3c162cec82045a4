package db

import (
	"fmt"
	"time"
)

// Run is one recorded analysis run.
type Run struct {
	RunID                    int64
	CreatedAt                time.Time
	ArticlesFile             string
	InteractionsFile         string
	InteractionCount         int
	UniqueUsers              int
	MedianInteractions       int
	MeanInteractions         int
	MaxInteractions          int
	UniqueArticles           int
	UniqueArticlesInteracted int
	MostViewedArticleID      int
	MostViewedArticleViews   int
	HistogramPath            string
}

// InsertRun records a completed run and returns its id.
func (db *DB) InsertRun(run *Run) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (
			articles_file, interactions_file,
			interaction_count, unique_users,
			median_interactions, mean_interactions, max_interactions,
			unique_articles, unique_articles_interacted,
			most_viewed_article_id, most_viewed_article_views,
			histogram_path
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ArticlesFile, run.InteractionsFile,
		run.InteractionCount, run.UniqueUsers,
		run.MedianInteractions, run.MeanInteractions, run.MaxInteractions,
		run.UniqueArticles, run.UniqueArticlesInteracted,
		run.MostViewedArticleID, run.MostViewedArticleViews,
		run.HistogramPath,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, created_at, articles_file, interactions_file,
		       interaction_count, unique_users,
		       median_interactions, mean_interactions, max_interactions,
		       unique_articles, unique_articles_interacted,
		       most_viewed_article_id, most_viewed_article_views,
		       histogram_path
		FROM runs
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.RunID, &r.CreatedAt, &r.ArticlesFile, &r.InteractionsFile,
			&r.InteractionCount, &r.UniqueUsers,
			&r.MedianInteractions, &r.MeanInteractions, &r.MaxInteractions,
			&r.UniqueArticles, &r.UniqueArticlesInteracted,
			&r.MostViewedArticleID, &r.MostViewedArticleViews,
			&r.HistogramPath,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}
