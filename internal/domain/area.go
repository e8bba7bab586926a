package domain

import (
	geom "github.com/twpayne/go-geom"
)

// HealthRecord is one usable row of the public-health indicators CSV.
type HealthRecord struct {
	AreaID int
	Name   string
	Rate   float64
}

// Boundary is one feature of the community-area GeoJSON.
type Boundary struct {
	AreaID   int
	Name     string
	Geometry geom.T // Polygon or MultiPolygon, WGS-84
}

// CommunityArea is a community area after the join: health metric plus geometry.
type CommunityArea struct {
	ID       int
	Name     string
	Rate     float64
	Geometry geom.T
}

// Dataset is the joined table, ordered by area ID. It is built once by the
// loader and read-only afterwards; renderers never mutate it.
type Dataset []CommunityArea

// Rates returns the metric values in dataset order.
func (ds Dataset) Rates() []float64 {
	rates := make([]float64, len(ds))
	for i, area := range ds {
		rates[i] = area.Rate
	}
	return rates
}
