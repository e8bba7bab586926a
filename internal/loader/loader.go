// Package loader reads the health indicator CSV and the community-area
// GeoJSON and joins them into the dataset the renderers consume.
package loader

import (
	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
)

// FileLoader loads the joined dataset from files on disk.
type FileLoader struct {
	HealthPath string
	GeoPath    string
	Metric     string
}

// Load reads both inputs and inner-joins them on area ID.
func (l FileLoader) Load() (domain.Dataset, error) {
	health, err := LoadHealth(l.HealthPath, l.Metric)
	if err != nil {
		return nil, err
	}

	boundaries, err := LoadBoundaries(l.GeoPath)
	if err != nil {
		return nil, err
	}

	return domain.Join(health, boundaries)
}
