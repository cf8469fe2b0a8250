// Package nickname parses the user's free-form nickname list and formats it
// back. Grammar: one entry per line, either "nickname" alone or
// "nickname/lineSpec" where lineSpec is a decimal in thousands ("5" or
// "4,728"); both "." and "," are accepted as decimal separator.
package nickname

import (
	"strconv"
	"strings"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
)

// Parse turns nickname text into an ordered entry list. Blank lines are
// dropped, line order is preserved. A malformed line spec degrades to a
// nickname-only entry; it never fails. Lines with an empty nickname part
// (e.g. "/123") are dropped, since an empty nickname would substring-match
// every balance row.
func Parse(text string) []model.NicknameEntry {
	lines := strings.Split(text, "\n")
	entries := make([]model.NicknameEntry, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		nick := line
		spec := ""
		if idx := strings.Index(line, "/"); idx >= 0 {
			nick = strings.TrimSpace(line[:idx])
			spec = strings.TrimSpace(line[idx+1:])
		}
		if nick == "" {
			continue
		}

		entry := model.NicknameEntry{Nickname: nick}
		if spec != "" {
			if v, err := parseLineSpec(spec); err == nil {
				// Entered in thousands, stored in full units.
				entry.Line = v * 1000
				entry.HasLine = true
			}
		}
		entries = append(entries, entry)
	}

	return entries
}

// Format is the inverse of Parse: one line per entry, "nickname" alone or
// "nickname/<line/1000>". Round-trips up to float precision.
func Format(entries []model.NicknameEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.HasLine {
			lines = append(lines, e.Nickname+"/"+formatLineSpec(e.Line/1000))
			continue
		}
		lines = append(lines, e.Nickname)
	}
	return strings.Join(lines, "\n")
}

func parseLineSpec(spec string) (float64, error) {
	spec = strings.ReplaceAll(spec, ",", ".")
	return strconv.ParseFloat(spec, 64)
}

func formatLineSpec(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
