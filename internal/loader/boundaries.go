package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
)

// GeoJSON property keys in the Chicago community-area boundary export.
const (
	propAreaID   = "area_numbe"
	propAreaName = "community"
)

// LoadBoundaries reads the community-area GeoJSON and returns one boundary
// per feature, ordered by area ID. Features must carry an area_numbe property
// and a Polygon or MultiPolygon geometry; a duplicate area ID is a data error.
func LoadBoundaries(path string) ([]domain.Boundary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open boundary file: %w", err)
	}

	boundaries, err := parseBoundaries(data)
	if err != nil {
		return nil, fmt.Errorf("parse boundary file %s: %w", path, err)
	}
	return boundaries, nil
}

func parseBoundaries(data []byte) ([]domain.Boundary, error) {
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrData, err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("%w: boundary file has no features", domain.ErrData)
	}

	seen := make(map[int]bool, len(fc.Features))
	boundaries := make([]domain.Boundary, 0, len(fc.Features))
	for i, feat := range fc.Features {
		id, err := areaIDProperty(feat.Properties)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate geometry for area %d", domain.ErrData, id)
		}
		seen[id] = true

		switch feat.Geometry.(type) {
		case *geom.Polygon, *geom.MultiPolygon:
		default:
			return nil, fmt.Errorf("%w: area %d has non-polygonal geometry", domain.ErrData, id)
		}

		name, _ := feat.Properties[propAreaName].(string)
		boundaries = append(boundaries, domain.Boundary{
			AreaID:   id,
			Name:     strings.TrimSpace(name),
			Geometry: feat.Geometry,
		})
	}

	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i].AreaID < boundaries[j].AreaID })
	return boundaries, nil
}

// areaIDProperty reads the area number, which the portal exports as a JSON
// string in some snapshots and a number in others.
func areaIDProperty(props map[string]any) (int, error) {
	switch v := props[propAreaID].(type) {
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrData, propAreaID, v)
		}
		return id, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: missing %s property", domain.ErrData, propAreaID)
	}
}
