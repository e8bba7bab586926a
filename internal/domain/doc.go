// Package domain models Chicago public-health indicator data joined to the
// city's community-area boundaries.
//
// # Data Sources
//
// The health table is the Chicago Data Portal's "Public Health Statistics -
// Selected public health indicators by Chicago community area" CSV. Each row
// is one community area with a set of indicator columns; this project reads
// the "Community Area" number, the "Community Area Name", and one configurable
// metric column (Low Birth Weight by default, a percentage of live births
// under 2500 grams).
//
// The boundary file is the portal's community-area GeoJSON FeatureCollection.
// Each feature carries the area number in the "area_numbe" property and the
// area name in "community", with a Polygon or MultiPolygon geometry in WGS-84.
//
// # Community Areas
//
// Chicago is divided into 77 fixed community areas, numbered 1-77. The number
// is the join key between the two sources. The health table sometimes covers
// fewer areas than the boundary file (suppressed or missing indicators); the
// join is a plain inner join and silently drops areas present on only one
// side. A join that produces zero rows is a data error, as is a boundary file
// that maps one area number to more than one geometry.
//
// # Error Taxonomy
//
// Malformed or mismatched input data wraps [ErrData] so callers can
// distinguish it from filesystem failures, which surface as wrapped os errors.
// Both are fatal; the pipeline has no retry policy.
package domain
