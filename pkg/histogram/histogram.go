// Package histogram renders the per-user interaction count distribution
// to a PNG file.
package histogram

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/dtnitsch/article-analytics/pkg/stats"
	"github.com/dtnitsch/article-analytics/pkg/storage"
)

const FileName = "user_interaction_histogram.png"

// Axis clipping matches the original exploratory plot.
const (
	xMax = 50
	yMax = 1500
)

// Render draws the interaction count histogram and saves it under dir,
// creating the directory when missing. One bin per distinct observed
// count value. Returns the path of the written file.
func Render(counts []int, summary stats.InteractionSummary, dir string) (string, error) {
	if len(counts) == 0 {
		return "", fmt.Errorf("empty interaction count distribution")
	}
	if err := storage.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("failed to create plots directory: %w", err)
	}

	p := plot.New()
	p.X.Label.Text = "Number of Interactions"
	p.Y.Label.Text = "Number of Users"
	p.X.Min, p.X.Max = 0, xMax
	p.Y.Min, p.Y.Max = 0, yMax
	p.Add(plotter.NewGrid())

	p.Add(&plotter.Histogram{
		Bins:      bins(counts),
		FillColor: color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		LineStyle: plotter.DefaultLineStyle,
	})

	if err := annotate(p, summary); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName)
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("failed to save histogram: %w", err)
	}

	return path, nil
}

// bins builds one bin per distinct count value: edges are the sorted
// distinct counts, with the last bin right-inclusive. A single distinct
// value gets one unit-wide bin.
func bins(counts []int) []plotter.HistogramBin {
	distinct := make([]int, 0, len(counts))
	seen := make(map[int]bool)
	for _, c := range counts {
		if !seen[c] {
			seen[c] = true
			distinct = append(distinct, c)
		}
	}
	sort.Ints(distinct)

	if len(distinct) == 1 {
		v := float64(distinct[0])
		return []plotter.HistogramBin{{Min: v, Max: v + 1, Weight: float64(len(counts))}}
	}

	edges := make([]float64, len(distinct))
	for i, v := range distinct {
		edges[i] = float64(v)
	}

	bs := make([]plotter.HistogramBin, len(edges)-1)
	for i := range bs {
		bs[i].Min = edges[i]
		bs[i].Max = edges[i+1]
	}
	for _, c := range counts {
		i := sort.SearchFloat64s(edges, float64(c))
		if i >= len(bs) {
			i = len(bs) - 1
		}
		bs[i].Weight++
	}

	return bs
}

// annotate places the boxed median/mean/max label in the upper-right of
// the plot area.
func annotate(p *plot.Plot, summary stats.InteractionSummary) error {
	box, err := plotter.NewPolygon(plotter.XYs{
		{X: 0.70 * xMax, Y: 0.78 * yMax},
		{X: 0.97 * xMax, Y: 0.78 * yMax},
		{X: 0.97 * xMax, Y: 0.96 * yMax},
		{X: 0.70 * xMax, Y: 0.96 * yMax},
	})
	if err != nil {
		return fmt.Errorf("failed to build annotation box: %w", err)
	}
	box.Color = color.White
	p.Add(box)

	text := strings.Join([]string{
		fmt.Sprintf("Median = %d", summary.Median),
		fmt.Sprintf("Mean = %d", summary.Mean),
		fmt.Sprintf("Max = %d", summary.Max),
	}, "\n")

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: 0.72 * xMax, Y: 0.94 * yMax}},
		Labels: []string{text},
	})
	if err != nil {
		return fmt.Errorf("failed to build annotation: %w", err)
	}
	p.Add(labels)

	return nil
}
