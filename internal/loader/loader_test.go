package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
)

func TestFileLoader_Load(t *testing.T) {
	dir := t.TempDir()
	healthPath := filepath.Join(dir, "health.csv")
	geoPath := filepath.Join(dir, "areas.geojson")

	// Area 3 has no boundary and area 4 has no health row; both drop out.
	csv := "Community Area,Community Area Name,Low Birth Weight\n1,Rogers Park,8.8\n2,West Ridge,8.4\n3,Uptown,10.5\n"
	require.NoError(t, os.WriteFile(healthPath, []byte(csv), 0o644))
	require.NoError(t, os.WriteFile(geoPath, collection(
		featureJSON("1", "ROGERS PARK", squareGeom),
		featureJSON("2", "WEST RIDGE", squareGeom),
		featureJSON("4", "LINCOLN SQUARE", squareGeom),
	), 0o644))

	l := FileLoader{HealthPath: healthPath, GeoPath: geoPath, Metric: "Low Birth Weight"}
	ds, err := l.Load()
	require.NoError(t, err)

	require.Len(t, ds, 2)
	assert.Equal(t, 1, ds[0].ID)
	assert.Equal(t, "Rogers Park", ds[0].Name)
	assert.Equal(t, 8.8, ds[0].Rate)
	assert.Equal(t, 2, ds[1].ID)
}

func TestFileLoader_LoadHealthError(t *testing.T) {
	dir := t.TempDir()
	geoPath := filepath.Join(dir, "areas.geojson")
	require.NoError(t, os.WriteFile(geoPath, collection(featureJSON("1", "ROGERS PARK", squareGeom)), 0o644))

	l := FileLoader{HealthPath: filepath.Join(dir, "missing.csv"), GeoPath: geoPath, Metric: "Low Birth Weight"}
	_, err := l.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileLoader_NoOverlapIsDataError(t *testing.T) {
	dir := t.TempDir()
	healthPath := filepath.Join(dir, "health.csv")
	geoPath := filepath.Join(dir, "areas.geojson")

	csv := "Community Area,Community Area Name,Low Birth Weight\n9,Edison Park,5.1\n"
	require.NoError(t, os.WriteFile(healthPath, []byte(csv), 0o644))
	require.NoError(t, os.WriteFile(geoPath, collection(featureJSON("1", "ROGERS PARK", squareGeom)), 0o644))

	l := FileLoader{HealthPath: healthPath, GeoPath: geoPath, Metric: "Low Birth Weight"}
	_, err := l.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrData)
}
