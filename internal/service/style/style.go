// Package style classifies output rows for styling. The classification is
// purely structural: it keys on row position and on the literal header
// markers, never on the computed data.
package style

import (
	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/filter"
)

const (
	mainTableWidth     = 12
	transferTableWidth = 5

	// Blank cells count as this length when sizing columns.
	blankCellWidth = 10
	minColWidth    = 10
	colWidthPad    = 2
)

// transferBlock is one transfer sub-table: its header row plus the blank
// data rows beneath it.
type transferBlock struct {
	start int // header row index
	end   int // last data row index, inclusive
}

// Annotate returns one RowStyle per table row. Transfer block boundaries are
// located once up front and reused, instead of re-scanning the table per row.
func Annotate(t *model.OutputTable) []model.RowStyle {
	blocks := findTransferBlocks(t)
	separators := separatorRows(blocks)

	styles := make([]model.RowStyle, len(t.Rows))
	for i := range t.Rows {
		styles[i] = classifyRow(t, i, blocks, separators)
	}
	return styles
}

func classifyRow(t *model.OutputTable, row int, blocks []transferBlock, separators map[int]bool) model.RowStyle {
	if separators[row] {
		// Columns is the span to strip explicitly.
		return model.RowStyle{Tag: model.StyleSeparator, Columns: mainTableWidth}
	}

	for _, b := range blocks {
		if row < b.start || row > b.end {
			continue
		}
		if row == b.start {
			return model.RowStyle{Tag: model.StyleHeader, Columns: transferTableWidth}
		}
		return model.RowStyle{Tag: model.StyleTransferBordered, Columns: transferTableWidth}
	}

	if isHeaderRow(t, row) {
		return model.RowStyle{Tag: model.StyleHeader, Columns: mainTableWidth}
	}
	return model.RowStyle{Tag: model.StyleMainBordered, Columns: mainTableWidth}
}

// isHeaderRow: the very first row, or a row whose first cell carries one of
// the literal header markers.
func isHeaderRow(t *model.OutputTable, row int) bool {
	if row == 0 {
		return true
	}
	first := t.FirstCellText(row)
	return first == filter.MainHeaders[0] || first == filter.TransferMarker
}

// findTransferBlocks locates every row starting with the transfer marker;
// each such row plus the following data rows forms one block.
func findTransferBlocks(t *model.OutputTable) []transferBlock {
	blocks := make([]transferBlock, 0, 3)
	for i := range t.Rows {
		if t.FirstCellText(i) != filter.TransferMarker {
			continue
		}
		end := i + 10
		if end >= len(t.Rows) {
			end = len(t.Rows) - 1
		}
		blocks = append(blocks, transferBlock{start: i, end: end})
	}
	return blocks
}

// separatorRows: the 2 rows immediately preceding the first transfer block,
// and every row strictly between consecutive blocks. Those are stripped of
// borders and fill regardless of the other rules.
func separatorRows(blocks []transferBlock) map[int]bool {
	out := make(map[int]bool)
	if len(blocks) == 0 {
		return out
	}

	for _, row := range []int{blocks[0].start - 1, blocks[0].start - 2} {
		if row >= 0 {
			out[row] = true
		}
	}

	for i := 1; i < len(blocks); i++ {
		for row := blocks[i-1].end + 1; row < blocks[i].start; row++ {
			out[row] = true
		}
	}
	return out
}

// ColumnWidths sizes each column to its longest content, counting blank
// cells as length 10, padded by 2 and floored at 10.
func ColumnWidths(t *model.OutputTable) []float64 {
	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	widths := make([]float64, cols)
	for col := 0; col < cols; col++ {
		longest := 0
		for row := range t.Rows {
			length := blankCellWidth
			if cell := cellAt(t.Rows[row], col); !cell.IsEmpty() {
				length = len([]rune(cell.Text()))
			}
			if length > longest {
				longest = length
			}
		}
		w := longest + colWidthPad
		if w < minColWidth {
			w = minColWidth
		}
		widths[col] = float64(w)
	}
	return widths
}

func cellAt(row []model.CellValue, col int) model.CellValue {
	if col < 0 || col >= len(row) {
		return model.CellValue{}
	}
	return row[col]
}
