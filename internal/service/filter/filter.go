// Package filter holds the transform core: it scans the club member balance
// sheet, matches rows against the nickname list, computes profit/loss and
// assembles the output table.
package filter

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
)

// Config carries the sheet geometry of the club export. The defaults match
// the current export format; config.toml can adjust them if the club moves
// columns around.
type Config struct {
	HeaderSkipRows int // rows dropped unconditionally before scanning
	NicknameCol    int // column K
	BalanceCol     int // column L
}

// DefaultConfig is the geometry of today's club export.
func DefaultConfig() Config {
	return Config{
		HeaderSkipRows: 3,
		NicknameCol:    10,
		BalanceCol:     11,
	}
}

// MainHeaders is the 12-column header of the main table. Only columns
// 0-5 and 11 are populated by the classifier; 6-10 stay blank for manual
// bookkeeping after download.
var MainHeaders = []string{
	"Nickname",
	"Name",
	"Line Amount",
	"Chips",
	"Has Line",
	"Profit/Loss",
	"Pm",
	"uttak sum",
	"ruller",
	"Claima chips",
	"satt opp",
	"Message",
}

// TransferHeaders is the 5-column header of the transfer sub-tables.
// TransferMarker (the first header) is what the style annotator keys on.
var TransferHeaders = []string{
	"Avsender",
	"Mottaker",
	"Antall chips",
	"Sendt",
	"Bekreftet",
}

// TransferMarker is the first cell of every transfer table header row.
const TransferMarker = "Avsender"

const (
	transferTables   = 3  // repetitions of the transfer sub-table
	transferDataRows = 10 // blank data rows under each transfer header
	transferGapRows  = 2  // blank rows between consecutive transfer tables
	spacerRows       = 10 // blank rows between main table and transfer area
	bucketGapRows    = 2  // blank rows between positive and negative buckets
)

const (
	msgNegative = "Hei🙂 Saldo er %d, mer info kommer"
	msgPositive = "Hei🙂 Saldo er %d, hva vil du gjøre?"
)

// Result bundles the output table with the per-bucket counts recorded in the
// run log.
type Result struct {
	Table         *model.OutputTable
	Matched       []model.MatchedRow
	PositiveCount int
	NegativeCount int
}

// Classify runs the filter against the named source sheet. Returns
// SheetNotFoundError when the sheet is absent. An empty nickname list
// short-circuits to a completely empty output sheet.
func Classify(wb *model.Workbook, sheetName string, entries []model.NicknameEntry, names model.NameMap, cfg Config) (*Result, error) {
	sheet, ok := wb.SheetByName(sheetName)
	if !ok {
		return nil, &model.SheetNotFoundError{Sheet: sheetName}
	}

	if len(entries) == 0 {
		return &Result{Table: &model.OutputTable{SheetName: sheetName}}, nil
	}

	matched := matchRows(sheet, entries, names, cfg)

	positive := make([]model.MatchedRow, 0, len(matched))
	negative := make([]model.MatchedRow, 0)
	for _, m := range matched {
		if m.ProfitLoss < 0 {
			negative = append(negative, m)
		} else {
			positive = append(positive, m)
		}
	}

	// Descending within each bucket; stable so ties keep encounter order.
	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].ProfitLoss > positive[j].ProfitLoss
	})
	sort.SliceStable(negative, func(i, j int) bool {
		return negative[i].ProfitLoss > negative[j].ProfitLoss
	})

	table := assemble(sheetName, positive, negative)

	return &Result{
		Table:         table,
		Matched:       matched,
		PositiveCount: len(positive),
		NegativeCount: len(negative),
	}, nil
}

func matchRows(sheet *model.Sheet, entries []model.NicknameEntry, names model.NameMap, cfg Config) []model.MatchedRow {
	rows := sheet.Rows
	if len(rows) <= cfg.HeaderSkipRows {
		return nil
	}
	rows = rows[cfg.HeaderSkipRows:]

	matched := make([]model.MatchedRow, 0, len(rows))
	for _, row := range rows {
		cellNick := cellAt(row, cfg.NicknameCol).Text()
		balance := cellAt(row, cfg.BalanceCol).Float()

		entry, ok := firstMatch(cellNick, entries)
		if !ok {
			continue
		}

		raw := balance
		if entry.HasLine {
			raw = balance - entry.Line
		}
		// Truncate toward zero so the magnitude is never inflated.
		pl := int(math.Trunc(raw))

		msg := msgPositive
		if pl < 0 {
			msg = msgNegative
		}

		matched = append(matched, model.MatchedRow{
			SourceNickname: entry.Nickname,
			ResolvedName:   resolveName(names, cellNick, entry.Nickname),
			Line:           entry.Line,
			HasLine:        entry.HasLine,
			Balance:        balance,
			ProfitLoss:     pl,
			Message:        fmt.Sprintf(msg, pl),
		})
	}
	return matched
}

// firstMatch returns the first entry (in list order) whose nickname is a
// substring of the row's nickname cell, both lowercased. Entry order is the
// only tie-break: if "a" is listed before "ab", "a" wins for "abc".
func firstMatch(cellNick string, entries []model.NicknameEntry) (model.NicknameEntry, bool) {
	lower := strings.ToLower(cellNick)
	for _, e := range entries {
		if e.Nickname == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(e.Nickname)) {
			return e, true
		}
	}
	return model.NicknameEntry{}, false
}

// resolveName prefers the full cell text as roster key, then the entry
// nickname, then gives up with an empty name.
func resolveName(names model.NameMap, cellNick, entryNick string) string {
	if name, ok := names[strings.ToLower(cellNick)]; ok {
		return name
	}
	if name, ok := names[strings.ToLower(entryNick)]; ok {
		return name
	}
	return ""
}

func assemble(sheetName string, positive, negative []model.MatchedRow) *model.OutputTable {
	rows := make([][]model.CellValue, 0,
		2+len(positive)+len(negative)+bucketGapRows+spacerRows+
			transferTables*(1+transferDataRows)+(transferTables-1)*transferGapRows)

	rows = append(rows, headerRow(MainHeaders))
	for _, m := range positive {
		rows = append(rows, dataRow(m))
	}
	rows = appendBlank(rows, bucketGapRows)
	rows = append(rows, headerRow(MainHeaders))
	for _, m := range negative {
		rows = append(rows, dataRow(m))
	}

	rows = appendBlank(rows, spacerRows)
	for i := 0; i < transferTables; i++ {
		if i > 0 {
			rows = appendBlank(rows, transferGapRows)
		}
		rows = append(rows, headerRow(TransferHeaders))
		rows = appendBlank(rows, transferDataRows)
	}

	return &model.OutputTable{SheetName: sheetName, Rows: rows}
}

func headerRow(headers []string) []model.CellValue {
	row := make([]model.CellValue, len(headers))
	for i, h := range headers {
		row[i] = model.String(h)
	}
	return row
}

// dataRow lays out one matched row across the 12 main columns. Columns 6-10
// (Pm … satt opp) are intentionally blank.
func dataRow(m model.MatchedRow) []model.CellValue {
	row := make([]model.CellValue, len(MainHeaders))
	row[0] = model.String(m.SourceNickname)
	row[1] = model.String(m.ResolvedName)
	if m.HasLine {
		row[2] = model.Number(m.Line)
		row[4] = model.String("Yes")
	} else {
		row[4] = model.String("No")
	}
	row[3] = model.Number(m.Balance)
	row[5] = model.Number(float64(m.ProfitLoss))
	row[11] = model.String(m.Message)
	return row
}

func appendBlank(rows [][]model.CellValue, n int) [][]model.CellValue {
	for i := 0; i < n; i++ {
		rows = append(rows, nil)
	}
	return rows
}

func cellAt(row []model.CellValue, col int) model.CellValue {
	if col < 0 || col >= len(row) {
		return model.CellValue{}
	}
	return row[col]
}
