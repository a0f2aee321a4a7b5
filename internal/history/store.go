// Package history persists the action log: one record per executed intent or
// desktop tool invocation, keyed by timestamp. Storage is sqlite so the
// history command can query it; export reproduces the JSON-lines form other
// tooling consumes.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Record is one logged action.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"-"`
	Kind      string    `json:"type"`
	Detail    string    `json:"detail"`
	OK        bool      `json:"success"`
}

const schema = `
CREATE TABLE IF NOT EXISTS actions (
	seq    INTEGER PRIMARY KEY AUTOINCREMENT,
	id     TEXT NOT NULL UNIQUE,
	ts     INTEGER NOT NULL,
	kind   TEXT NOT NULL,
	detail TEXT NOT NULL,
	ok     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS actions_ts ON actions (ts);
`

// Store is the sqlite-backed action log.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the history database location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".hush", "history.db"), nil
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append stores one action record and returns it.
func (s *Store) Append(kind, detail string, ok bool) (Record, error) {
	rec := Record{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Kind:      kind,
		Detail:    detail,
		OK:        ok,
	}
	_, err := s.db.Exec(
		"INSERT INTO actions (id, ts, kind, detail, ok) VALUES (?, ?, ?, ?, ?)",
		rec.ID, rec.Timestamp.UnixMilli(), rec.Kind, rec.Detail, boolToInt(rec.OK),
	)
	if err != nil {
		return Record{}, fmt.Errorf("failed to append action: %w", err)
	}
	return rec, nil
}

// Record implements the dispatcher's Recorder interface. Write failures are
// swallowed: logging must never disturb dispatch.
func (s *Store) Record(kind, detail string, ok bool) {
	_, _ = s.Append(kind, detail, ok)
}

// Recent returns up to n records, newest first.
func (s *Store) Recent(n int) ([]Record, error) {
	rows, err := s.db.Query(
		"SELECT id, ts, kind, detail, ok FROM actions ORDER BY seq DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to query actions: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Last returns the most recent record, or nil when the log is empty.
func (s *Store) Last() (*Record, error) {
	recs, err := s.Recent(1)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// ExportJSONL writes the whole log, oldest first, as JSON lines of the form
// {"timestamp": <unix seconds>, "action": {...}}.
func (s *Store) ExportJSONL(w io.Writer) error {
	rows, err := s.db.Query("SELECT id, ts, kind, detail, ok FROM actions ORDER BY seq ASC")
	if err != nil {
		return fmt.Errorf("failed to query actions: %w", err)
	}
	defer rows.Close()

	enc := json.NewEncoder(w)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return err
		}
		entry := struct {
			Timestamp float64 `json:"timestamp"`
			Action    Record  `json:"action"`
		}{
			Timestamp: float64(rec.Timestamp.UnixMilli()) / 1000.0,
			Action:    rec,
		}
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to encode action: %w", err)
		}
	}
	return rows.Err()
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var rec Record
	var ts int64
	var ok int
	if err := rows.Scan(&rec.ID, &ts, &rec.Kind, &rec.Detail, &ok); err != nil {
		return Record{}, fmt.Errorf("failed to scan action: %w", err)
	}
	rec.Timestamp = time.UnixMilli(ts)
	rec.OK = ok != 0
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
