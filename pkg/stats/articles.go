package stats

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/article-analytics/models"
)

// JoinedRow pairs one interaction with the catalog row it matched.
// Article is nil when the catalog has no entry for the interaction's
// article id; the interaction itself is always retained.
type JoinedRow struct {
	Interaction models.Interaction
	Article     *models.Article
}

// ArticlePopularity is one entry of the popularity ranking.
type ArticlePopularity struct {
	ArticleID int
	Views     int
}

// ArticleSummary holds the catalog statistics block.
type ArticleSummary struct {
	UniqueArticles           int
	UniqueArticlesInteracted int
	UniqueUsers              int
	TotalInteractions        int
	MostViewedArticleID      int
	MostViewedArticleViews   int
}

// DeduplicateArticles keeps the first catalog row for each article id.
// Running it over an already-deduplicated table is a no-op.
func DeduplicateArticles(articles *models.ArticleTable) *models.ArticleTable {
	seen := make(map[int]bool, len(articles.Rows))
	deduped := &models.ArticleTable{Columns: articles.Columns}
	for _, row := range articles.Rows {
		if seen[row.ID] {
			continue
		}
		seen[row.ID] = true
		deduped.Rows = append(deduped.Rows, row)
	}

	return deduped
}

// LeftJoin attaches catalog metadata to every interaction row. The
// catalog should be deduplicated first so each id resolves to one row.
func LeftJoin(interactions *models.InteractionTable, articles *models.ArticleTable) []JoinedRow {
	byID := make(map[int]*models.Article, len(articles.Rows))
	for i := range articles.Rows {
		byID[articles.Rows[i].ID] = &articles.Rows[i]
	}

	joined := make([]JoinedRow, len(interactions.Rows))
	for i, row := range interactions.Rows {
		joined[i] = JoinedRow{Interaction: row, Article: byID[row.ArticleID]}
	}

	return joined
}

// RankArticles counts interactions per article id over the full log and
// orders the result by views descending. Ties rank by ascending article
// id so the ordering is deterministic.
func RankArticles(interactions *models.InteractionTable) []ArticlePopularity {
	views := make(map[int]int)
	for _, row := range interactions.Rows {
		views[row.ArticleID]++
	}

	ranking := make([]ArticlePopularity, 0, len(views))
	for id, n := range views {
		ranking = append(ranking, ArticlePopularity{ArticleID: id, Views: n})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Views != ranking[j].Views {
			return ranking[i].Views > ranking[j].Views
		}
		return ranking[i].ArticleID < ranking[j].ArticleID
	})

	return ranking
}

// SummarizeArticles computes the catalog statistics from the deduplicated
// catalog, the joined view and the popularity ranking.
func SummarizeArticles(articles *models.ArticleTable, joined []JoinedRow, ranking []ArticlePopularity, interactions *models.InteractionTable) (ArticleSummary, error) {
	if len(ranking) == 0 {
		return ArticleSummary{}, fmt.Errorf("empty popularity ranking")
	}

	interacted := make(map[int]bool)
	for _, row := range joined {
		interacted[row.Interaction.ArticleID] = true
	}

	users := make(map[int]bool)
	for _, row := range interactions.Rows {
		users[row.UserID] = true
	}

	return ArticleSummary{
		UniqueArticles:           len(articles.Rows),
		UniqueArticlesInteracted: len(interacted),
		UniqueUsers:              len(users),
		TotalInteractions:        len(interactions.Rows),
		MostViewedArticleID:      ranking[0].ArticleID,
		MostViewedArticleViews:   ranking[0].Views,
	}, nil
}
