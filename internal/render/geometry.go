package render

import (
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"gonum.org/v1/plot/plotter"
)

// polygonRings converts a boundary geometry into plotter ring sets: one entry
// per polygon, holding the exterior ring followed by any holes. MultiPolygons
// contribute one entry per member polygon.
func polygonRings(g geom.T) [][]plotter.XYer {
	switch t := g.(type) {
	case *geom.Polygon:
		return [][]plotter.XYer{ringsToXYers(t.Coords())}
	case *geom.MultiPolygon:
		out := make([][]plotter.XYer, 0, t.NumPolygons())
		for _, rings := range t.Coords() {
			out = append(out, ringsToXYers(rings))
		}
		return out
	default:
		return nil
	}
}

func ringsToXYers(rings [][]geom.Coord) []plotter.XYer {
	out := make([]plotter.XYer, 0, len(rings))
	for _, ring := range rings {
		xys := make(plotter.XYs, len(ring))
		for i, c := range ring {
			xys[i].X = c.X()
			xys[i].Y = c.Y()
		}
		out = append(out, xys)
	}
	return out
}

// centroid returns a label anchor for the geometry, falling back to the
// bounding-box center when the planar centroid cannot be computed.
func centroid(g geom.T) (float64, float64) {
	if c, err := xy.Centroid(g); err == nil && len(c) >= 2 {
		return c.X(), c.Y()
	}
	b := g.Bounds()
	return (b.Min(0) + b.Max(0)) / 2, (b.Min(1) + b.Max(1)) / 2
}
