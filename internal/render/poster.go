package render

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/couchcryptid/chicago-health-atlas/internal/artifact"
	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
)

// Poster renders the choropleth poster: every community area filled from the
// red ramp scaled over the observed rate range, outlined in black, with the
// rate printed at the area centroid.
func Poster(ds domain.Dataset, sum domain.Summary, metric string) (artifact.Artifact, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Chicago Health Metric: %s", metric)
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.HideAxes()

	for _, area := range ds {
		fill := reds.at(normalize(area.Rate, sum.Min, sum.Max))
		for _, rings := range polygonRings(area.Geometry) {
			poly, err := plotter.NewPolygon(rings...)
			if err != nil {
				return artifact.Artifact{}, fmt.Errorf("poster polygon for area %d: %w", area.ID, err)
			}
			poly.Color = fill
			poly.LineStyle.Color = color.Black
			poly.LineStyle.Width = vg.Points(0.8)
			p.Add(poly)
		}
	}

	labels, err := rateLabels(ds)
	if err != nil {
		return artifact.Artifact{}, fmt.Errorf("poster labels: %w", err)
	}
	p.Add(labels)

	return pngArtifact(p, 8*vg.Inch, 10*vg.Inch, PosterName)
}

// rateLabels places each area's rate at its centroid, one decimal place.
func rateLabels(ds domain.Dataset) (*plotter.Labels, error) {
	pts := make(plotter.XYs, len(ds))
	texts := make([]string, len(ds))
	for i, area := range ds {
		pts[i].X, pts[i].Y = centroid(area.Geometry)
		texts[i] = strconv.FormatFloat(area.Rate, 'f', 1, 64)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(6)
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	return labels, nil
}
