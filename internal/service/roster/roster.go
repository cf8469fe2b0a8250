// Package roster builds the nickname → display name lookup from the player
// overview sheet of the reference workbook.
package roster

import (
	"strings"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
)

// The overview sheet is hand-maintained, so the header casing drifts.
var (
	nickHeaders = []string{"Nick", "nick", "NICK"}
	nameHeaders = []string{"Name", "name", "NAME"}
)

// Build reads the named sheet and returns a lowercased nickname → name map.
// Rows missing either value are skipped. Returns SheetNotFoundError when the
// sheet is absent.
func Build(wb *model.Workbook, sheetName string) (model.NameMap, error) {
	sheet, ok := wb.SheetByName(sheetName)
	if !ok {
		return nil, &model.SheetNotFoundError{Sheet: sheetName}
	}
	if len(sheet.Rows) == 0 {
		return model.NameMap{}, nil
	}

	header := sheet.Rows[0]
	nickCol := findHeaderCol(header, nickHeaders)
	nameCol := findHeaderCol(header, nameHeaders)

	names := make(model.NameMap)
	if nickCol < 0 || nameCol < 0 {
		return names, nil
	}

	for _, row := range sheet.Rows[1:] {
		nick := cellText(row, nickCol)
		name := cellText(row, nameCol)
		if nick == "" || name == "" {
			continue
		}
		names[strings.ToLower(nick)] = name
	}

	return names, nil
}

func findHeaderCol(header []model.CellValue, variants []string) int {
	for _, want := range variants {
		for i, cell := range header {
			if cell.Text() == want {
				return i
			}
		}
	}
	return -1
}

func cellText(row []model.CellValue, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col].Text())
}
