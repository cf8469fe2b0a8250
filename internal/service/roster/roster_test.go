package roster_test

import (
	"errors"
	"testing"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/roster"
)

func sheet(name string, rows ...[]string) model.Sheet {
	s := model.Sheet{Name: name}
	for _, row := range rows {
		cells := make([]model.CellValue, len(row))
		for i, v := range row {
			cells[i] = model.String(v)
		}
		s.Rows = append(s.Rows, cells)
	}
	return s
}

func TestBuild(t *testing.T) {
	wb := &model.Workbook{Sheets: []model.Sheet{
		sheet("Player overview",
			[]string{"Nick", "Name"},
			[]string{"Gus77", "Gustav A"},
			[]string{"KariQ", "Kari B"},
			[]string{"", "No Nick"},
			[]string{"nameless", ""},
		),
	}}

	names, err := roster.Build(wb, "Player overview")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(names) != 2 {
		t.Fatalf("got %d entries, want 2", len(names))
	}
	if got := names["gus77"]; got != "Gustav A" {
		t.Fatalf("names[gus77] = %q, want %q", got, "Gustav A")
	}
	if got := names["kariq"]; got != "Kari B" {
		t.Fatalf("names[kariq] = %q, want %q", got, "Kari B")
	}
}

func TestBuildHeaderCaseVariants(t *testing.T) {
	tests := []struct {
		name   string
		header []string
	}{
		{"lowercase", []string{"nick", "name"}},
		{"uppercase", []string{"NICK", "NAME"}},
		{"mixed", []string{"nick", "Name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := &model.Workbook{Sheets: []model.Sheet{
				sheet("Player overview", tt.header, []string{"gus", "Gustav"}),
			}}
			names, err := roster.Build(wb, "Player overview")
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if got := names["gus"]; got != "Gustav" {
				t.Fatalf("names[gus] = %q, want %q", got, "Gustav")
			}
		})
	}
}

func TestBuildSheetNotFound(t *testing.T) {
	wb := &model.Workbook{Sheets: []model.Sheet{sheet("Something else")}}

	_, err := roster.Build(wb, "Player overview")
	var notFound *model.SheetNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want SheetNotFoundError", err)
	}
	if notFound.Sheet != "Player overview" {
		t.Fatalf("notFound.Sheet = %q, want %q", notFound.Sheet, "Player overview")
	}
}

func TestBuildEmptySheet(t *testing.T) {
	wb := &model.Workbook{Sheets: []model.Sheet{{Name: "Player overview"}}}

	names, err := roster.Build(wb, "Player overview")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("got %d entries, want 0", len(names))
	}
}
