package histogram

import (
	"path/filepath"
	"testing"

	"github.com/dtnitsch/article-analytics/pkg/stats"
	"github.com/dtnitsch/article-analytics/pkg/storage"
)

func TestRenderWritesPNG(t *testing.T) {
	counts := []int{1, 1, 2, 3, 3, 3, 10}
	summary := stats.Summarize(counts)

	// dir does not exist yet; Render must create it
	dir := filepath.Join(t.TempDir(), "plots")
	path, err := Render(counts, summary, dir)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if path != filepath.Join(dir, FileName) {
		t.Errorf("Render() path = %s, want %s", path, filepath.Join(dir, FileName))
	}
	if !storage.HasFile(path) {
		t.Errorf("Render() did not write %s", path)
	}
}

func TestRenderEmptyDistribution(t *testing.T) {
	if _, err := Render(nil, stats.InteractionSummary{}, t.TempDir()); err == nil {
		t.Error("Render() expected error for empty distribution, got nil")
	}
}

func TestBins(t *testing.T) {
	tests := []struct {
		name       string
		counts     []int
		wantBins   int
		wantWeight []float64
	}{
		{
			// edges 1,2,3: bins [1,2) and [2,3]; the value equal to the
			// last edge lands in the final bin
			name:       "one bin per distinct value",
			counts:     []int{1, 1, 2, 3, 3},
			wantBins:   2,
			wantWeight: []float64{2, 3},
		},
		{
			name:       "single distinct value gets one bin",
			counts:     []int{4, 4, 4},
			wantBins:   1,
			wantWeight: []float64{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := bins(tt.counts)
			if len(bs) != tt.wantBins {
				t.Fatalf("bins() count = %d, want %d", len(bs), tt.wantBins)
			}
			for i, b := range bs {
				if b.Weight != tt.wantWeight[i] {
					t.Errorf("bin %d weight = %v, want %v", i, b.Weight, tt.wantWeight[i])
				}
			}
		})
	}
}

func TestBinsEdges(t *testing.T) {
	bs := bins([]int{1, 5, 9})

	wantMin := []float64{1, 5}
	wantMax := []float64{5, 9}
	for i, b := range bs {
		if b.Min != wantMin[i] || b.Max != wantMax[i] {
			t.Errorf("bin %d = [%v, %v], want [%v, %v]", i, b.Min, b.Max, wantMin[i], wantMax[i])
		}
	}
}
