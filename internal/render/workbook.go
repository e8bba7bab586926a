package render

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/chicago-health-atlas/internal/artifact"
	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
)

// Workbook renders the Excel companion: a Dashboard sheet ranking every
// community area by rate and a Summary sheet with the citywide figures.
func Workbook(ds domain.Dataset, sum domain.Summary, metric string) (artifact.Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	const dashboard = "Dashboard"
	if err := f.SetSheetName("Sheet1", dashboard); err != nil {
		return artifact.Artifact{}, fmt.Errorf("workbook dashboard sheet: %w", err)
	}

	ranked := domain.Summarize(ds, len(ds)).Top
	rows := make([][]any, 0, len(ranked)+1)
	rows = append(rows, []any{"Rank", "Community Area", "Community Area Name", metric})
	for i, area := range ranked {
		rows = append(rows, []any{i + 1, area.ID, area.Name, area.Rate})
	}
	if err := writeSheet(f, dashboard, rows); err != nil {
		return artifact.Artifact{}, err
	}

	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return artifact.Artifact{}, fmt.Errorf("workbook summary sheet: %w", err)
	}
	summaryRows := [][]any{
		{"Metric", metric},
		{"Areas", sum.Count},
		{"Mean", sum.Mean},
		{"Min", sum.Min},
		{"Max", sum.Max},
		{"Highest area", sum.MaxArea.Name},
		{"Lowest area", sum.MinArea.Name},
	}
	if err := writeSheet(f, summary, summaryRows); err != nil {
		return artifact.Artifact{}, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return artifact.Artifact{}, fmt.Errorf("encode workbook: %w", err)
	}
	return artifact.Artifact{Name: WorkbookName, Body: buf.Bytes()}, nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("workbook cell (%d,%d): %w", c+1, r+1, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("workbook write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
