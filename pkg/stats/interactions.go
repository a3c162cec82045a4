// Package stats computes the interaction and catalog statistics over the
// loaded tables.
package stats

import (
	"sort"

	"github.com/dtnitsch/article-analytics/models"
)

// InteractionSummary describes the per-user interaction count distribution.
type InteractionSummary struct {
	Median int
	Mean   int
	Max    int
}

// UserInteractionCounts groups interactions by user and counts rows per
// group. The result holds one count per distinct user, sorted ascending.
func UserInteractionCounts(interactions *models.InteractionTable) []int {
	perUser := make(map[int]int)
	for _, row := range interactions.Rows {
		perUser[row.UserID]++
	}

	counts := make([]int, 0, len(perUser))
	for _, n := range perUser {
		counts = append(counts, n)
	}
	sort.Ints(counts)

	return counts
}

// Summarize computes median, mean and max over a sorted count
// distribution. Median of an even-length distribution is the average of
// the two middle values; median and mean are truncated toward zero.
func Summarize(counts []int) InteractionSummary {
	n := len(counts)
	if n == 0 {
		return InteractionSummary{}
	}

	var median float64
	if n%2 == 1 {
		median = float64(counts[n/2])
	} else {
		median = float64(counts[n/2-1]+counts[n/2]) / 2
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	return InteractionSummary{
		Median: int(median),
		Mean:   int(float64(total) / float64(n)),
		Max:    counts[n-1],
	}
}
