package style_test

import (
	"testing"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/filter"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/style"
)

// buildTable assembles a real output table through the classifier so the
// annotator is tested against the layout it will actually see.
func buildTable(t *testing.T, positives, negatives int) *model.OutputTable {
	t.Helper()

	sheet := model.Sheet{Name: "Club Member Balance"}
	for i := 0; i < 3; i++ {
		sheet.Rows = append(sheet.Rows, nil)
	}
	entries := make([]model.NicknameEntry, 0, positives+negatives)
	add := func(nick string, balance float64) {
		row := make([]model.CellValue, 12)
		row[10] = model.String(nick)
		row[11] = model.Number(balance)
		sheet.Rows = append(sheet.Rows, row)
		entries = append(entries, model.NicknameEntry{Nickname: nick})
	}
	for i := 0; i < positives; i++ {
		add("plus"+string(rune('a'+i)), float64(100+i))
	}
	for i := 0; i < negatives; i++ {
		add("minus"+string(rune('a'+i)), float64(-100-i))
	}

	wb := &model.Workbook{Sheets: []model.Sheet{sheet}}
	result, err := filter.Classify(wb, sheet.Name, entries, nil, filter.DefaultConfig())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	return result.Table
}

func TestAnnotateHeadersAndBlocks(t *testing.T) {
	table := buildTable(t, 2, 1)
	styles := style.Annotate(table)

	if len(styles) != table.RowCount() {
		t.Fatalf("got %d styles for %d rows", len(styles), table.RowCount())
	}

	if styles[0].Tag != model.StyleHeader || styles[0].Columns != 12 {
		t.Fatalf("row 0 = %+v, want main header over 12 columns", styles[0])
	}

	headerCount := 0
	transferHeaders := 0
	for i, rs := range styles {
		switch rs.Tag {
		case model.StyleHeader:
			headerCount++
			if rs.Columns == 5 {
				transferHeaders++
				if got := table.FirstCellText(i); got != filter.TransferMarker {
					t.Fatalf("transfer header at row %d has first cell %q", i, got)
				}
			}
		}
	}
	// 2 main headers + 3 transfer headers.
	if headerCount != 5 {
		t.Fatalf("headerCount = %d, want 5", headerCount)
	}
	if transferHeaders != 3 {
		t.Fatalf("transferHeaders = %d, want 3", transferHeaders)
	}
}

func TestAnnotateTransferBlockWidth(t *testing.T) {
	table := buildTable(t, 1, 1)
	styles := style.Annotate(table)

	for i := range styles {
		if table.FirstCellText(i) != filter.TransferMarker {
			continue
		}
		// The 10 data rows of the block get the 5-column border.
		for j := 1; j <= 10; j++ {
			got := styles[i+j]
			if got.Tag != model.StyleTransferBordered || got.Columns != 5 {
				t.Fatalf("row %d = %+v, want transfer border over 5 columns", i+j, got)
			}
		}
	}
}

func TestAnnotateSeparators(t *testing.T) {
	table := buildTable(t, 1, 1)
	styles := style.Annotate(table)

	firstBlock := -1
	for i := range styles {
		if table.FirstCellText(i) == filter.TransferMarker {
			firstBlock = i
			break
		}
	}
	if firstBlock < 0 {
		t.Fatalf("no transfer block found")
	}

	// The 2 rows above the first block are stripped.
	for _, row := range []int{firstBlock - 1, firstBlock - 2} {
		if styles[row].Tag != model.StyleSeparator {
			t.Fatalf("row %d = %+v, want separator", row, styles[row])
		}
	}
	// The 2 rows between block 1 and block 2 are stripped too.
	for _, row := range []int{firstBlock + 11, firstBlock + 12} {
		if styles[row].Tag != model.StyleSeparator {
			t.Fatalf("row %d = %+v, want separator between blocks", row, styles[row])
		}
	}
	// The spacer rows above the separators keep the default main border.
	if styles[firstBlock-3].Tag != model.StyleMainBordered {
		t.Fatalf("row %d = %+v, want main border", firstBlock-3, styles[firstBlock-3])
	}
}

func TestColumnWidths(t *testing.T) {
	table := &model.OutputTable{
		SheetName: "Club Member Balance",
		Rows: [][]model.CellValue{
			{model.String("abc"), model.String("a very long display name")},
			{model.String("x"), model.CellValue{}},
			nil,
		},
	}

	widths := style.ColumnWidths(table)
	if len(widths) != 2 {
		t.Fatalf("got %d widths, want 2", len(widths))
	}
	// Column 0: longest is the blank cell count (10) + 2.
	if widths[0] != 12 {
		t.Fatalf("widths[0] = %v, want 12", widths[0])
	}
	// Column 1: content length 24 + 2.
	if widths[1] != 26 {
		t.Fatalf("widths[1] = %v, want 26", widths[1])
	}
}

func TestColumnWidthsEmptyTable(t *testing.T) {
	widths := style.ColumnWidths(&model.OutputTable{SheetName: "Club Member Balance"})
	if len(widths) != 0 {
		t.Fatalf("got %d widths for empty table, want 0", len(widths))
	}
}
