package appliance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/ncobase/nasadmin/config"
	"github.com/ncobase/nasadmin/nanoid"
)

// ErrNotFound is returned by Get for a missing record
var ErrNotFound = errors.New("record not found")

// Store keeps appliance records in SQLite. Every resource shares one table
// and records keep their insertion order.
type Store struct {
	db *sql.DB
}

// Open connects to the database described by cfg and migrates it
func Open(ctx context.Context, cfg *config.SQLite) (*Store, error) {
	if cfg == nil || cfg.Source == "" {
		return nil, fmt.Errorf("sqlite: connection source is empty")
	}

	db, err := sql.Open("sqlite3", cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open connection: %w", err)
	}

	if cfg.MaxOpenConn > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConn)
	} else {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: failed to ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Migrate creates the schema if it does not exist
func (s *Store) Migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS records (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			resource TEXT NOT NULL,
			id TEXT NOT NULL,
			parent_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (resource, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_scope ON records(resource, parent_id, seq)`,
	}
	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Put inserts rec, or replaces the record with the same id. An empty ID
// is filled with a new primary key.
func (s *Store) Put(ctx context.Context, r Resource, parentID string, rec Record) error {
	return put(ctx, s.db, r, parentID, rec)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func put(ctx context.Context, db execer, r Resource, parentID string, rec Record) error {
	if err := r.checkParent(parentID); err != nil {
		return err
	}
	b := rec.base()
	if b.ID == "" {
		b.ID = nanoid.PrimaryKey()
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal %s %s: %w", r, b.ID, err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO records (resource, id, parent_id, name, body) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (resource, id) DO UPDATE SET parent_id = excluded.parent_id, name = excluded.name, body = excluded.body`,
		string(r), b.ID, parentID, b.Name, string(body))
	if err != nil {
		return fmt.Errorf("put %s %s: %w", r, b.ID, err)
	}
	return nil
}

// Get returns the raw record body
func (s *Store) Get(ctx context.Context, r Resource, id string) (json.RawMessage, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM records WHERE resource = ? AND id = ?`, string(r), id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, r, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", r, id, err)
	}
	return json.RawMessage(body), nil
}

// Count returns the number of records of r under parentID
func (s *Store) Count(ctx context.Context, r Resource, parentID string) (int, error) {
	if err := r.checkParent(parentID); err != nil {
		return 0, err
	}
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE resource = ? AND parent_id = ?`, string(r), parentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r, err)
	}
	return n, nil
}

// List returns up to limit raw records of r under parentID, skipping offset
func (s *Store) List(ctx context.Context, r Resource, parentID string, offset, limit int) ([]json.RawMessage, error) {
	if err := r.checkParent(parentID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT body FROM records WHERE resource = ? AND parent_id = ? ORDER BY seq LIMIT ? OFFSET ?`,
		string(r), parentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r, err)
	}
	defer rows.Close()

	out := make([]json.RawMessage, 0, limit)
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r, err)
		}
		out = append(out, json.RawMessage(body))
	}
	return out, rows.Err()
}

// Page loads one window of records and the total they are drawn from
func (s *Store) Page(ctx context.Context, r Resource, parentID string, offset, limit int) ([]json.RawMessage, int, error) {
	total, err := s.Count(ctx, r, parentID)
	if err != nil {
		return nil, 0, err
	}
	if offset >= total {
		return []json.RawMessage{}, total, nil
	}
	items, err := s.List(ctx, r, parentID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Empty reports whether the store holds no records at all
func (s *Store) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return false, fmt.Errorf("count records: %w", err)
	}
	return n == 0, nil
}
