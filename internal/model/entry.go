package model

// NicknameEntry is one line of the user's nickname list: an identifier used
// for substring matching against the balance sheet, plus an optional "line"
// amount in full currency units (entered in thousands).
type NicknameEntry struct {
	Nickname string  `json:"nickname"`
	Line     float64 `json:"line"`
	HasLine  bool    `json:"hasLine"`
}

// NameMap is a read-only lookup from lowercased nickname to display name,
// built once from the roster sheet.
type NameMap map[string]string

// MatchedRow is the classifier's record for one balance row that matched a
// nickname entry. It is built once and never mutated.
type MatchedRow struct {
	SourceNickname string  `json:"sourceNickname"`
	ResolvedName   string  `json:"resolvedName"`
	Line           float64 `json:"line"`
	HasLine        bool    `json:"hasLine"`
	Balance        float64 `json:"balance"`
	ProfitLoss     int     `json:"profitLoss"`
	Message        string  `json:"message"`
}
