package journal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func createTestJournal(t *testing.T) (*Journal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j, path
}

func TestOpen_CreatesDatabase(t *testing.T) {
	j, path := createTestJournal(t)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
	if j.RunID() == "" {
		t.Error("run id must be set")
	}
}

func TestRecordAndResults(t *testing.T) {
	j, _ := createTestJournal(t)
	at := time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC)
	j.now = func() time.Time { return at }
	ctx := context.Background()

	if err := j.Record(ctx, Result{Path: "a.xml", MessageID: "pacs.008.001.08", MsgID: "M1", Valid: true}); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	bad := Result{Path: "b.json", MessageID: "pacs.008.001.08", IssueCode: "too_long", IssuePath: "/FIToFICstmrCdtTrf/GrpHdr/MsgId", IssueMsg: "MsgId is longer than the maximum length of 35"}
	if err := j.Record(ctx, bad); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	got, err := j.Results(ctx, j.RunID())
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if !got[0].Valid || got[0].MsgID != "M1" || !got[0].CheckedAt.Equal(at) {
		t.Errorf("first result: %+v", got[0])
	}
	if got[1].Valid || got[1].IssueCode != "too_long" || got[1].RunID != j.RunID() {
		t.Errorf("second result: %+v", got[1])
	}
}

func TestRuns_AcrossReopen(t *testing.T) {
	j1, path := createTestJournal(t)
	ctx := context.Background()
	if err := j1.Record(ctx, Result{Path: "a.xml", Valid: true}); err != nil {
		t.Fatal(err)
	}
	j1.Close()

	j2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer j2.Close()
	if j2.RunID() == j1.RunID() {
		t.Fatal("each Open starts a new run")
	}
	if err := j2.Record(ctx, Result{Path: "a.xml", IssueCode: "pattern"}); err != nil {
		t.Fatal(err)
	}
	if err := j2.Record(ctx, Result{Path: "b.xml", Valid: true}); err != nil {
		t.Fatal(err)
	}

	runs, err := j2.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != j2.RunID() || runs[0].Files != 2 || runs[0].Invalid != 1 {
		t.Errorf("latest run: %+v", runs[0])
	}
	if runs[1].ID != j1.RunID() || runs[1].Files != 1 || runs[1].Invalid != 0 {
		t.Errorf("first run: %+v", runs[1])
	}
}
