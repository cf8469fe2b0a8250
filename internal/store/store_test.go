package store_test

import (
	"path/filepath"
	"testing"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "filter_runs.db"))
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestFilterRunLifecycle(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateFilterRun("balance.xlsx", "Club Member Balance", 4)
	if err != nil {
		t.Fatalf("CreateFilterRun failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("run id is 0")
	}

	if err := s.CompleteFilterRun(id, 3, 2, 1, "done", ""); err != nil {
		t.Fatalf("CompleteFilterRun failed: %v", err)
	}

	runs, err := s.ListFilterRuns(10)
	if err != nil {
		t.Fatalf("ListFilterRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}

	r := runs[0]
	if r.Filename != "balance.xlsx" || r.EntryCount != 4 {
		t.Fatalf("run = %+v", r)
	}
	if r.MatchedCount != 3 || r.PositiveCount != 2 || r.NegativeCount != 1 {
		t.Fatalf("counts = %d/%d/%d, want 3/2/1", r.MatchedCount, r.PositiveCount, r.NegativeCount)
	}
	if r.Status != "done" {
		t.Fatalf("status = %q, want done", r.Status)
	}
	if r.CompletedAt == nil {
		t.Fatalf("CompletedAt not set")
	}
}

func TestFilterRunError(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateFilterRun("balance.xlsx", "Club Member Balance", 1)
	if err != nil {
		t.Fatalf("CreateFilterRun failed: %v", err)
	}
	if err := s.CompleteFilterRun(id, 0, 0, 0, "error", "sheet not found"); err != nil {
		t.Fatalf("CompleteFilterRun failed: %v", err)
	}

	runs, err := s.ListFilterRuns(10)
	if err != nil {
		t.Fatalf("ListFilterRuns failed: %v", err)
	}
	if runs[0].Status != "error" || runs[0].ErrorMessage != "sheet not found" {
		t.Fatalf("run = %+v, want error status", runs[0])
	}
}

func TestListFilterRunsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"first.xlsx", "second.xlsx"} {
		if _, err := s.CreateFilterRun(name, "Club Member Balance", 0); err != nil {
			t.Fatalf("CreateFilterRun failed: %v", err)
		}
	}

	runs, err := s.ListFilterRuns(10)
	if err != nil {
		t.Fatalf("ListFilterRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Filename != "second.xlsx" {
		t.Fatalf("runs[0] = %q, want second.xlsx", runs[0].Filename)
	}
}
