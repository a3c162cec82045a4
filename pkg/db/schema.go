package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- Runs: one row per completed analysis run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    articles_file TEXT NOT NULL,
    interactions_file TEXT NOT NULL,

    -- Interaction distribution summary
    interaction_count INTEGER NOT NULL,
    unique_users INTEGER NOT NULL,
    median_interactions INTEGER NOT NULL,
    mean_interactions INTEGER NOT NULL,
    max_interactions INTEGER NOT NULL,

    -- Catalog statistics
    unique_articles INTEGER NOT NULL,
    unique_articles_interacted INTEGER NOT NULL,
    most_viewed_article_id INTEGER NOT NULL,
    most_viewed_article_views INTEGER NOT NULL,

    histogram_path TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
`
