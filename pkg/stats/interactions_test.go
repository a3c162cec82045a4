package stats

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/article-analytics/models"
)

func interactionTable(pairs ...[2]int) *models.InteractionTable {
	table := &models.InteractionTable{}
	for _, p := range pairs {
		table.Rows = append(table.Rows, models.Interaction{UserID: p[0], ArticleID: p[1]})
	}
	return table
}

func TestUserInteractionCounts(t *testing.T) {
	table := interactionTable(
		[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3},
		[2]int{1, 1},
		[2]int{2, 2}, [2]int{2, 3},
	)

	want := []int{1, 2, 3}
	if got := UserInteractionCounts(table); !reflect.DeepEqual(got, want) {
		t.Errorf("UserInteractionCounts() = %v, want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   InteractionSummary
	}{
		{
			name:   "odd length",
			counts: []int{1, 2, 9},
			want:   InteractionSummary{Median: 2, Mean: 4, Max: 9},
		},
		{
			name:   "even length truncates averaged median",
			counts: []int{1, 2, 3, 8},
			want:   InteractionSummary{Median: 2, Mean: 3, Max: 8},
		},
		{
			name:   "single user: median, mean and max coincide",
			counts: []int{7},
			want:   InteractionSummary{Median: 7, Mean: 7, Max: 7},
		},
		{
			name:   "empty distribution",
			counts: nil,
			want:   InteractionSummary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.counts); got != tt.want {
				t.Errorf("Summarize(%v) = %+v, want %+v", tt.counts, got, tt.want)
			}
		})
	}
}
