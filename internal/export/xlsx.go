package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"archecal/internal/schedule"
)

// Layout of the exported sheet: title in row 1, header in row 3, data
// from row 4. Matches the original tool's workbooks.
const (
	titleRow     = 1
	headerRow    = 3
	firstDataRow = 4
)

var xlsxHeaders = []string{"Day", "Time", "Activity", "Archetype", "Notes"}

// WriteXLSX renders a schedule as a one-sheet workbook named
// "<Variant> Schedule" with a bold title cell and a bold header row, one
// data row per export table row. Returns the encoded file bytes.
func WriteXLSX(sched *schedule.Schedule, days []string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sched.Variant.Title() + " Schedule"
	if err := f.SetSheetName(f.GetSheetList()[0], sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	title := fmt.Sprintf("%s Week Schedule", sched.Variant.Title())
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", titleRow), title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", titleRow), fmt.Sprintf("A%d", titleRow), titleStyle); err != nil {
		return nil, err
	}

	for i, h := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for r, row := range TableRows(sched, days) {
		values := []string{row.Day, row.Time, row.Activity, row.Archetype, row.Notes}
		for c, v := range values {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, firstDataRow+r)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// Readable defaults for the text-heavy columns.
	if err := f.SetColWidth(sheet, "A", "B", 16); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "C", "E", 28); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
