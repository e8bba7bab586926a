package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
)

// Column names in the Chicago Data Portal health indicators CSV.
const (
	colAreaID   = "Community Area"
	colAreaName = "Community Area Name"
)

// LoadHealth reads the health indicators CSV and returns one record per
// community area for the given metric column. Rows with a blank metric value
// are skipped, matching the suppressed-indicator convention in the source
// data. Missing columns, unparseable values, and a table with zero usable
// rows are data errors.
func LoadHealth(path, metric string) ([]domain.HealthRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open health table: %w", err)
	}
	defer f.Close()

	records, err := parseHealth(f, metric)
	if err != nil {
		return nil, fmt.Errorf("parse health table %s: %w", path, err)
	}
	return records, nil
}

func parseHealth(r io.Reader, metric string) ([]domain.HealthRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: health table is empty", domain.ErrData)
	}

	idIdx, err := columnIndex(header, colAreaID)
	if err != nil {
		return nil, err
	}
	nameIdx, err := columnIndex(header, colAreaName)
	if err != nil {
		return nil, err
	}
	metricIdx, err := columnIndex(header, metric)
	if err != nil {
		return nil, err
	}

	var records []domain.HealthRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrData, err)
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[idIdx]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid area id %q", domain.ErrData, line, row[idIdx])
		}

		rawRate := strings.TrimSpace(row[metricIdx])
		if rawRate == "" {
			continue
		}
		rate, err := strconv.ParseFloat(rawRate, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid %s value %q", domain.ErrData, line, metric, rawRate)
		}

		records = append(records, domain.HealthRecord{
			AreaID: id,
			Name:   strings.TrimSpace(row[nameIdx]),
			Rate:   rate,
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: health table has no usable rows", domain.ErrData)
	}
	return records, nil
}

// columnIndex finds a header column by name, ignoring case and surrounding
// whitespace. The portal occasionally re-exports with shifted casing.
func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: column %q not found", domain.ErrData, name)
}
