package model

// OutputTable is the assembled result of a filter run: ordered rows of cells
// for a single output sheet. Blank rows are nil slices.
type OutputTable struct {
	SheetName string
	Rows      [][]CellValue
}

// RowCount returns the number of rows in the table.
func (t *OutputTable) RowCount() int {
	return len(t.Rows)
}

// FirstCellText returns the display text of the first cell of a row, empty
// for blank rows.
func (t *OutputTable) FirstCellText(row int) string {
	if row < 0 || row >= len(t.Rows) || len(t.Rows[row]) == 0 {
		return ""
	}
	return t.Rows[row][0].Text()
}

// StyleTag classifies a row for styling, derived purely from its structural
// position in the output table.
type StyleTag int

const (
	StyleUnstyled         StyleTag = iota
	StyleHeader                    // bold + fill + border
	StyleMainBordered              // border across the main table width
	StyleTransferBordered          // border across the transfer table width
	StyleSeparator                 // explicitly stripped of border and fill
)

// RowStyle is the annotator's verdict for one output row. Columns is the
// span counted from column A that the style (or, for separators, the
// explicit strip) applies to; zero for unstyled rows.
type RowStyle struct {
	Tag     StyleTag
	Columns int
}
