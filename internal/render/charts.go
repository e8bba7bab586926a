package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/chicago-health-atlas/internal/artifact"
	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
)

var barFill = color.NRGBA{R: 70, G: 130, B: 180, A: 255}

// BarChart renders the leading community areas as a horizontal bar chart.
// Bars are drawn bottom-up, so the ranking is reversed to put the highest
// rate on top.
func BarChart(sum domain.Summary, metric string) (artifact.Artifact, error) {
	n := len(sum.Top)
	values := make(plotter.Values, n)
	names := make([]string, n)
	for i, area := range sum.Top {
		values[n-1-i] = area.Rate
		names[n-1-i] = area.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return artifact.Artifact{}, fmt.Errorf("bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = barFill
	bars.LineStyle.Width = 0

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d Community Areas: %s", n, metric)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = metric
	p.Add(bars, plotter.NewGrid())
	p.NominalY(names...)

	return pngArtifact(p, 10*vg.Inch, 6*vg.Inch, BarChartName)
}

// Histogram renders the citywide rate distribution.
func Histogram(ds domain.Dataset, metric string, bins int) (artifact.Artifact, error) {
	hist, err := plotter.NewHist(plotter.Values(ds.Rates()), bins)
	if err != nil {
		return artifact.Artifact{}, fmt.Errorf("histogram: %w", err)
	}
	hist.FillColor = barFill

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of %s Across Community Areas", metric)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = metric
	p.Y.Label.Text = "Frequency"
	p.Add(hist, plotter.NewGrid())

	return pngArtifact(p, 8*vg.Inch, 6*vg.Inch, HistogramName)
}
