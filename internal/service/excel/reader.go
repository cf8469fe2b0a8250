// Package excel adapts between the in-memory workbook model and xlsx files
// via excelize. The transform core never touches the binary format; it only
// sees ordered rows of typed cells.
package excel

import (
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
)

// Load decodes an xlsx stream into a workbook. Returns FileReadError when
// the stream is not a spreadsheet container.
func Load(reader io.Reader) (*model.Workbook, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, &model.FileReadError{Err: err}
	}
	defer file.Close()

	return fromExcelize(file)
}

// FromFile converts an already-open excelize workbook. Used by tests and by
// the roster auto-loader.
func FromFile(file *excelize.File) (*model.Workbook, error) {
	return fromExcelize(file)
}

func fromExcelize(file *excelize.File) (*model.Workbook, error) {
	wb := &model.Workbook{}

	for _, name := range file.GetSheetList() {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, &model.FileReadError{Err: err}
		}

		sheet := model.Sheet{Name: name, Rows: make([][]model.CellValue, 0, len(rows))}
		for _, row := range rows {
			cells := make([]model.CellValue, len(row))
			for i, raw := range row {
				cells[i] = toCell(raw)
			}
			sheet.Rows = append(sheet.Rows, cells)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

// toCell types a raw cell: empty, number (thousand separators tolerated) or
// string.
func toCell(raw string) model.CellValue {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.CellValue{}
	}
	numeric := strings.ReplaceAll(trimmed, ",", "")
	if f, err := strconv.ParseFloat(numeric, 64); err == nil {
		return model.Number(f)
	}
	return model.String(raw)
}
