package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
)

const healthCSV = `Community Area,Community Area Name,Birth Rate,Low Birth Weight
1,Rogers Park,16.4,8.8
2,West Ridge,17.3,8.4
3,Uptown,13.1,10.5
`

func TestParseHealth(t *testing.T) {
	records, err := parseHealth(strings.NewReader(healthCSV), "Low Birth Weight")
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, domain.HealthRecord{AreaID: 1, Name: "Rogers Park", Rate: 8.8}, records[0])
	assert.Equal(t, domain.HealthRecord{AreaID: 3, Name: "Uptown", Rate: 10.5}, records[2])
}

func TestParseHealth_MetricColumnSelectsValues(t *testing.T) {
	records, err := parseHealth(strings.NewReader(healthCSV), "Birth Rate")
	require.NoError(t, err)
	assert.Equal(t, 16.4, records[0].Rate)
}

func TestParseHealth_HeaderCaseInsensitive(t *testing.T) {
	csv := "COMMUNITY AREA,community area name,Low Birth Weight\n1,Rogers Park,8.8\n"
	records, err := parseHealth(strings.NewReader(csv), "low birth weight")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 8.8, records[0].Rate)
}

func TestParseHealth_BlankMetricSkipped(t *testing.T) {
	csv := "Community Area,Community Area Name,Low Birth Weight\n1,Rogers Park,8.8\n2,West Ridge,\n3,Uptown,10.5\n"
	records, err := parseHealth(strings.NewReader(csv), "Low Birth Weight")
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].AreaID)
	assert.Equal(t, 3, records[1].AreaID)
}

func TestParseHealth_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{
			name: "empty table",
			csv:  "",
			want: "health table is empty",
		},
		{
			name: "missing metric column",
			csv:  "Community Area,Community Area Name\n1,Rogers Park\n",
			want: `column "Low Birth Weight" not found`,
		},
		{
			name: "invalid area id",
			csv:  "Community Area,Community Area Name,Low Birth Weight\nabc,Rogers Park,8.8\n",
			want: "invalid area id",
		},
		{
			name: "invalid metric value",
			csv:  "Community Area,Community Area Name,Low Birth Weight\n1,Rogers Park,n/a\n",
			want: "invalid Low Birth Weight value",
		},
		{
			name: "no usable rows",
			csv:  "Community Area,Community Area Name,Low Birth Weight\n1,Rogers Park,\n",
			want: "no usable rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseHealth(strings.NewReader(tt.csv), "Low Birth Weight")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrData)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadHealth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.csv")
	require.NoError(t, os.WriteFile(path, []byte(healthCSV), 0o644))

	records, err := LoadHealth(path, "Low Birth Weight")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLoadHealth_MissingFile(t *testing.T) {
	_, err := LoadHealth(filepath.Join(t.TempDir(), "missing.csv"), "Low Birth Weight")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, domain.ErrData)
}
