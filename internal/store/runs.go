package store

import (
	"database/sql"
	"fmt"
	"time"
)

// FilterRun is one row of the run history.
type FilterRun struct {
	ID            int64      `json:"id"`
	Filename      string     `json:"filename"`
	SourceSheet   string     `json:"sourceSheet"`
	EntryCount    int        `json:"entryCount"`
	MatchedCount  int        `json:"matchedCount"`
	PositiveCount int        `json:"positiveCount"`
	NegativeCount int        `json:"negativeCount"`
	Status        string     `json:"status"`
	ErrorMessage  string     `json:"errorMessage,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// CreateFilterRun records the start of a filter action and returns its id.
func (s *Store) CreateFilterRun(filename, sourceSheet string, entryCount int) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO filter_runs (filename, source_sheet, entry_count, status)
		VALUES (?, ?, ?, 'processing')
	`, filename, sourceSheet, entryCount)
	if err != nil {
		return 0, fmt.Errorf("failed to create filter run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get filter run id: %w", err)
	}
	return id, nil
}

// CompleteFilterRun finishes a run with its counts, or with an error message
// and status "error".
func (s *Store) CompleteFilterRun(id int64, matched, positive, negative int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE filter_runs SET
			matched_count = ?,
			positive_count = ?,
			negative_count = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, matched, positive, negative, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to complete filter run: %w", err)
	}
	return nil
}

// ListFilterRuns returns the most recent runs, newest first.
func (s *Store) ListFilterRuns(limit int) ([]FilterRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, filename, source_sheet, entry_count, matched_count,
		       positive_count, negative_count, status, error_message,
		       created_at, completed_at
		FROM filter_runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list filter runs: %w", err)
	}
	defer rows.Close()

	runs := make([]FilterRun, 0, limit)
	for rows.Next() {
		var r FilterRun
		var completed sql.NullTime
		if err := rows.Scan(
			&r.ID, &r.Filename, &r.SourceSheet, &r.EntryCount, &r.MatchedCount,
			&r.PositiveCount, &r.NegativeCount, &r.Status, &r.ErrorMessage,
			&r.CreatedAt, &completed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan filter run: %w", err)
		}
		if completed.Valid {
			t := completed.Time
			r.CompletedAt = &t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
