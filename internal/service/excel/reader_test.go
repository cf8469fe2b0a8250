package excel_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/excel"
)

func workbookBytes(t *testing.T, sheet string, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf
}

func TestLoad(t *testing.T) {
	buf := workbookBytes(t, "Club Member Balance",
		[]interface{}{"gustav", 4728},
		[]interface{}{"kari", "not a number"},
	)

	wb, err := excel.Load(buf)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	sheet, ok := wb.SheetByName("Club Member Balance")
	if !ok {
		t.Fatalf("sheet not found after load")
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(sheet.Rows))
	}

	if got := sheet.Cell(0, 0); got.Kind != model.CellString || got.Str != "gustav" {
		t.Fatalf("cell(0,0) = %+v, want string gustav", got)
	}
	if got := sheet.Cell(0, 1); got.Kind != model.CellNumber || got.Num != 4728 {
		t.Fatalf("cell(0,1) = %+v, want number 4728", got)
	}
	if got := sheet.Cell(1, 1); got.Kind != model.CellString {
		t.Fatalf("cell(1,1) = %+v, want string", got)
	}
}

func TestLoadNotASpreadsheet(t *testing.T) {
	_, err := excel.Load(strings.NewReader("definitely not xlsx"))

	var readErr *model.FileReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("err = %v, want FileReadError", err)
	}
}

func TestLoadEmptyCellsTyped(t *testing.T) {
	buf := workbookBytes(t, "Club Member Balance",
		[]interface{}{"", "x"},
	)

	wb, err := excel.Load(buf)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	sheet, _ := wb.SheetByName("Club Member Balance")
	if got := sheet.Cell(0, 0); !got.IsEmpty() {
		t.Fatalf("cell(0,0) = %+v, want empty", got)
	}
}
