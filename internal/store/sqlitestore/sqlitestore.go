package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/idilsaglam/fieldlist/internal/field"
	"github.com/idilsaglam/fieldlist/internal/model"
)

// Store keeps field values in SQLite, one row per (entry, field), and
// appends every write to a revision log.
type Store struct {
	db    *sql.DB
	path  string
	entry string
	field string
	now   func() time.Time
}

var _ field.Store = (*Store)(nil)

// Revision is one past SetValue.
type Revision struct {
	ID        string
	CreatedAt time.Time
	Items     []model.Item
}

// Open creates (if needed) and opens the database at dbPath, bound to one
// entry's field.
func Open(dbPath, entry, fieldID string) (*Store, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite db path is empty")
	}
	if entry == "" || fieldID == "" {
		return nil, fmt.Errorf("sqlite store needs an entry and a field id")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	s := &Store{db: db, path: dbPath, entry: entry, field: fieldID, now: time.Now}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *Store) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS field_values (
		entry_id   TEXT NOT NULL,
		field_id   TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (entry_id, field_id)
	);

	CREATE TABLE IF NOT EXISTS field_revisions (
		id         TEXT PRIMARY KEY,
		seq        INTEGER NOT NULL,
		entry_id   TEXT NOT NULL,
		field_id   TEXT NOT NULL,
		value      TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_field_revisions_field
		ON field_revisions(entry_id, field_id, seq);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string { return s.path }

// Value returns the decoded JSON stored for the bound field, nil if unset.
func (s *Store) Value() (any, error) {
	var raw string
	err := s.db.QueryRow(
		`SELECT value FROM field_values WHERE entry_id = ? AND field_id = ?`,
		s.entry, s.field,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query field value: %w", err)
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", field.ErrMalformedValue, err)
	}
	return v, nil
}

// SetValue upserts the field and records a revision in one transaction.
func (s *Store) SetValue(items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	now := s.now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO field_values (entry_id, field_id, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(entry_id, field_id) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.entry, s.field, string(b), now,
	); err != nil {
		return fmt.Errorf("upsert field value: %w", err)
	}

	var seq int64
	if err := tx.QueryRow(
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM field_revisions WHERE entry_id = ? AND field_id = ?`,
		s.entry, s.field,
	).Scan(&seq); err != nil {
		return fmt.Errorf("next revision seq: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO field_revisions (id, seq, entry_id, field_id, value, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), seq, s.entry, s.field, string(b), now,
	); err != nil {
		return fmt.Errorf("insert revision: %w", err)
	}
	return tx.Commit()
}

// Revisions returns up to limit revisions, newest first. limit <= 0 means all.
func (s *Store) Revisions(limit int) ([]Revision, error) {
	q := `SELECT id, value, created_at FROM field_revisions
		WHERE entry_id = ? AND field_id = ?
		ORDER BY seq DESC`
	args := []any{s.entry, s.field}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query revisions: %w", err)
	}
	defer rows.Close()

	var out []Revision
	for rows.Next() {
		var (
			r       Revision
			raw     string
			created string
		)
		if err := rows.Scan(&r.ID, &raw, &created); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &r.Items); err != nil {
			return nil, fmt.Errorf("revision %s: %w: %v", r.ID, field.ErrMalformedValue, err)
		}
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			r.CreatedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
