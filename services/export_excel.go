package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"georeport/report"
)

// GenerateXLSX writes the recommendations table to a spreadsheet: the
// report meta lines, the fixed header pair, then a merged banner row and a
// data row per recommendation, shaded with the same palette tokens the
// other renderers use.
func GenerateXLSX(data report.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Recommendations"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E"}
	widths := []float64{10, 20, 26, 26, 20}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	metaStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create meta style: %w", err)
	}

	// One cached style per palette token, shared by banner and data rows.
	tokenStyles := make(map[report.ColorToken]int, len(report.Tokens))
	for _, token := range report.Tokens {
		style, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 10},
			Fill: excelize.Fill{
				Type:    "pattern",
				Color:   []string{"#" + token.Hex()},
				Pattern: 1,
			},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Border:    thinBorders(),
		})
		if err != nil {
			return nil, fmt.Errorf("create style for %s: %w", token, err)
		}
		tokenStyles[token] = style
	}
	headerStyle := tokenStyles[report.ColorOrange]

	// Tokens from outside the palette degrade to the neutral default, the
	// same way the RGBA and Hex mappings do.
	styleFor := func(token report.ColorToken) int {
		if style, ok := tokenStyles[token]; ok {
			return style
		}
		return tokenStyles[report.ColorGrayDefault]
	}

	setCell := func(col, row int, value string, style int) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return fmt.Errorf("cell name (%d,%d): %w", col, row, err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
		if style != 0 {
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return fmt.Errorf("style cell %s: %w", cell, err)
			}
		}
		return nil
	}

	// Title and meta rows.
	if err := f.MergeCell(sheet, "A1", "E1"); err != nil {
		return nil, fmt.Errorf("merge title row: %w", err)
	}
	if err := setCell(1, 1, "GEOLOGICAL INVESTIGATION REPORT", titleStyle); err != nil {
		return nil, err
	}
	if err := setCell(1, 2, "S.No. "+data.SNo, metaStyle); err != nil {
		return nil, err
	}
	if err := setCell(5, 2, "Date: "+data.Date, metaStyle); err != nil {
		return nil, err
	}

	// Header and units rows.
	row := 4
	for i, label := range report.TableHeaders {
		if err := setCell(i+1, row, label, headerStyle); err != nil {
			return nil, err
		}
	}
	row++
	for i, unit := range report.TableUnits {
		if err := setCell(i+1, row, unit, headerStyle); err != nil {
			return nil, err
		}
	}
	row++

	// Banner + data row per recommendation.
	for _, rec := range data.Recommendations {
		first, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("cell name (1,%d): %w", row, err)
		}
		last, err := excelize.CoordinatesToCellName(5, row)
		if err != nil {
			return nil, fmt.Errorf("cell name (5,%d): %w", row, err)
		}
		if err := f.MergeCell(sheet, first, last); err != nil {
			return nil, fmt.Errorf("merge banner row %d: %w", row, err)
		}
		if err := setCell(1, row, rec.PriorityLabel, styleFor(rec.PriorityColor)); err != nil {
			return nil, err
		}
		row++

		values := []string{rec.PointNo, rec.Depth, rec.YieldVal, rec.Layers, rec.Casing}
		for i, v := range values {
			if err := setCell(i+1, row, v, styleFor(rec.RowColor)); err != nil {
				return nil, err
			}
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// thinBorders returns a full thin border set for table cells.
func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#000000", Style: 1},
		{Type: "right", Color: "#000000", Style: 1},
		{Type: "top", Color: "#000000", Style: 1},
		{Type: "bottom", Color: "#000000", Style: 1},
	}
}
