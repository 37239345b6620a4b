// Package journal records validation results in a SQLite database so that
// repeated runs over a directory can be compared.
package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Journal is an open results database.
type Journal struct {
	db    *sql.DB
	runID string
	now   func() time.Time
}

// Result is one checked file. Issue fields are empty for a valid file.
type Result struct {
	RunID     string
	Path      string
	MessageID string // e.g. pacs.008.001.08
	MsgID     string // GrpHdr/MsgId or AppHdr/BizMsgIdr when known
	Valid     bool
	IssueCode string
	IssuePath string
	IssueMsg  string
	CheckedAt time.Time
}

// Run summarizes one invocation.
type Run struct {
	ID      string
	Files   int
	Invalid int
	Started time.Time
}

// Open creates or opens the database at path and starts a new run. Use
// ":memory:" for a throwaway journal.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// one writer; also keeps a :memory: database on a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("open journal: %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("open journal: schema: %w", err)
	}
	return &Journal{db: db, runID: uuid.NewString(), now: time.Now}, nil
}

// RunID identifies the run started by Open.
func (j *Journal) RunID() string { return j.runID }

// Close closes the database.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Record stores r under the current run. RunID and CheckedAt are filled in
// when zero.
func (j *Journal) Record(ctx context.Context, r Result) error {
	if r.RunID == "" {
		r.RunID = j.runID
	}
	if r.CheckedAt.IsZero() {
		r.CheckedAt = j.now()
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO results
		(run_id, path, message_id, msg_id, valid, issue_code, issue_path, issue_msg, checked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.RunID,
		r.Path,
		r.MessageID,
		r.MsgID,
		r.Valid,
		r.IssueCode,
		r.IssuePath,
		r.IssueMsg,
		r.CheckedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record %s: %w", r.Path, err)
	}
	return nil
}

// Results returns the results of a run in insertion order.
func (j *Journal) Results(ctx context.Context, runID string) ([]Result, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT run_id, path, message_id, msg_id, valid, issue_code, issue_path, issue_msg, checked_at
		FROM results WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var at string
		if err := rows.Scan(&r.RunID, &r.Path, &r.MessageID, &r.MsgID, &r.Valid, &r.IssueCode, &r.IssuePath, &r.IssueMsg, &at); err != nil {
			return nil, fmt.Errorf("results: %w", err)
		}
		if r.CheckedAt, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("results: checked_at: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Runs lists every run, most recent first.
func (j *Journal) Runs(ctx context.Context) ([]Run, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT run_id, COUNT(*), SUM(CASE WHEN valid THEN 0 ELSE 1 END), MIN(checked_at)
		FROM results GROUP BY run_id ORDER BY MIN(id) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &r.Files, &r.Invalid, &started); err != nil {
			return nil, fmt.Errorf("runs: %w", err)
		}
		if r.Started, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("runs: started: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
