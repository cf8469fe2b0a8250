package model

import "strconv"

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// CellKind identifies the variant carried by a CellValue.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
)

// CellValue is a tagged cell variant: empty, string or number.
type CellValue struct {
	Kind CellKind
	Str  string
	Num  float64
}

// String builds a string cell. An empty string yields an empty cell.
func String(s string) CellValue {
	if s == "" {
		return CellValue{}
	}
	return CellValue{Kind: CellString, Str: s}
}

// Number builds a numeric cell.
func Number(f float64) CellValue {
	return CellValue{Kind: CellNumber, Num: f}
}

// IsEmpty reports whether the cell carries no value.
func (c CellValue) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// Text returns the display text of the cell.
func (c CellValue) Text() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return formatNumber(c.Num)
	default:
		return ""
	}
}

// Float returns the numeric value of the cell, 0 for anything non-numeric.
func (c CellValue) Float() float64 {
	if c.Kind == CellNumber {
		return c.Num
	}
	return 0
}

// Value returns the cell value as an untyped interface for spreadsheet
// writers; nil for empty cells.
func (c CellValue) Value() interface{} {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return c.Num
	default:
		return nil
	}
}

// Sheet is an ordered grid of cells.
type Sheet struct {
	Name string
	Rows [][]CellValue
}

// Cell returns the cell at the given column index, empty when the row is
// shorter than the index.
func (s *Sheet) Cell(row, col int) CellValue {
	if row < 0 || row >= len(s.Rows) {
		return CellValue{}
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return CellValue{}
	}
	return r[col]
}

// Workbook is an ordered collection of sheets.
type Workbook struct {
	Sheets []Sheet
}

// SheetByName looks up a sheet by its exact name.
func (w *Workbook) SheetByName(name string) (*Sheet, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name)
	}
	return names
}
