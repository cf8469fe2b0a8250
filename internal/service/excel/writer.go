package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
)

// Write serializes the annotated output table into a single-sheet workbook.
// styles and widths come from the style annotator; len(styles) must equal
// the table's row count.
func Write(table *model.OutputTable, styles []model.RowStyle, widths []float64) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := table.SheetName
	f.SetSheetName("Sheet1", sheet)

	for r, row := range table.Rows {
		for c, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("bad cell coordinate (%d,%d): %w", c+1, r+1, err)
			}
			if err := f.SetCellValue(sheet, name, cell.Value()); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", name, err)
			}
		}
	}

	if err := applyStyles(f, sheet, styles); err != nil {
		return nil, err
	}
	if err := applyWidths(f, sheet, widths); err != nil {
		return nil, err
	}

	return f, nil
}

func applyStyles(f *excelize.File, sheet string, styles []model.RowStyle) error {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	borderStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return fmt.Errorf("failed to create border style: %w", err)
	}

	// Separator rows are written with the default style so no border or
	// fill leaks in from neighbouring table sections.
	plainStyle, err := f.NewStyle(&excelize.Style{})
	if err != nil {
		return fmt.Errorf("failed to create plain style: %w", err)
	}

	for r, rs := range styles {
		var styleID int
		cols := rs.Columns
		switch rs.Tag {
		case model.StyleHeader:
			styleID = headerStyle
		case model.StyleMainBordered, model.StyleTransferBordered:
			styleID = borderStyle
		case model.StyleSeparator:
			styleID = plainStyle
		default:
			continue
		}
		if cols <= 0 {
			continue
		}

		start, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(cols, r+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, start, end, styleID); err != nil {
			return fmt.Errorf("failed to style row %d: %w", r+1, err)
		}
	}

	return nil
}

func applyWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}
	return nil
}
