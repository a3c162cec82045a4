// Package report prints the analysis result blocks to a writer.
package report

import (
	"fmt"
	"io"

	"github.com/dtnitsch/article-analytics/pkg/stats"
)

// PrintInteractionSummary writes the per-user interaction distribution block.
func PrintInteractionSummary(w io.Writer, s stats.InteractionSummary) {
	fmt.Fprintf(w, "\nUser-Article Interaction Statistics (Part I):\n")
	fmt.Fprintf(w, "\tMedian: %d\n", s.Median)
	fmt.Fprintf(w, "\tMean:   %d\n", s.Mean)
	fmt.Fprintf(w, "\tMax:    %d\n\n", s.Max)
}

// PrintArticleSummary writes the catalog statistics block.
func PrintArticleSummary(w io.Writer, s stats.ArticleSummary) {
	fmt.Fprintf(w, "\nUser-Article Interaction Statistics (Part II):\n")
	fmt.Fprintf(w, "\tNumber of Unique Articles: %d\n", s.UniqueArticles)
	fmt.Fprintf(w, "\tNumber of Unique Articles (>0 interactions): %d\n", s.UniqueArticlesInteracted)
	fmt.Fprintf(w, "\tNumber of Unique Users: %d\n", s.UniqueUsers)
	fmt.Fprintf(w, "\tNumber of User-Article Interactions: %d\n", s.TotalInteractions)
	fmt.Fprintf(w, "\tMost Viewed Article Id: %d\n", s.MostViewedArticleID)
	fmt.Fprintf(w, "\tMost Viewed Article Views: %d\n\n", s.MostViewedArticleViews)
}
