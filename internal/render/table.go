package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/couchcryptid/chicago-health-atlas/internal/artifact"
	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
)

// TopTable renders the leading community areas as a CSV table with the same
// column headers the source health table uses.
func TopTable(sum domain.Summary, metric string) (artifact.Artifact, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"Community Area", "Community Area Name", metric}}
	for _, area := range sum.Top {
		records = append(records, []string{
			strconv.Itoa(area.ID),
			area.Name,
			strconv.FormatFloat(area.Rate, 'f', 1, 64),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return artifact.Artifact{}, fmt.Errorf("render table: %w", err)
	}
	return artifact.Artifact{Name: TableName, Body: buf.Bytes()}, nil
}
