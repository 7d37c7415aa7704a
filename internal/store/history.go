// Package store persists confirmed picks in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const dbFileName = "history.sqlite"

// Store is a directory holding the history database.
type Store struct {
	Dir string
}

// Pick is one saved value.
type Pick struct {
	ID        int64     `json:"id"`
	Label     string    `json:"label,omitempty"`
	Value     time.Time `json:"value"`
	Min       string    `json:"min,omitempty"`
	Max       string    `json:"max,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrEmpty = errors.New("no saved picks")

func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store: empty data dir")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) Path() string { return filepath.Join(s.Dir, dbFileName) }

// Record saves p and returns it with ID and CreatedAt filled in.
func (s Store) Record(ctx context.Context, p Pick) (Pick, error) {
	if p.Value.IsZero() {
		return Pick{}, errors.New("store: zero value")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return Pick{}, err
	}
	defer db.Close()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	res, err := db.ExecContext(ctx,
		`INSERT INTO picks(label, value, value_unix, min, max, created_at_unixms) VALUES(?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(p.Label),
		p.Value.Format(time.RFC3339),
		p.Value.Unix(),
		p.Min,
		p.Max,
		p.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Pick{}, fmt.Errorf("record pick: %w", err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return Pick{}, fmt.Errorf("record pick: %w", err)
	}
	p.CreatedAt = time.UnixMilli(p.CreatedAt.UnixMilli())
	return p, nil
}

// List returns saved picks, newest first. limit <= 0 means all.
func (s Store) List(ctx context.Context, limit int) ([]Pick, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT id, label, value, min, max, created_at_unixms FROM picks ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	defer rows.Close()

	var out []Pick
	for rows.Next() {
		p, err := scanPick(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	return out, nil
}

// Last returns the newest saved pick, optionally restricted to label.
// It returns ErrEmpty when nothing matches.
func (s Store) Last(ctx context.Context, label string) (Pick, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return Pick{}, err
	}
	defer db.Close()

	q := `SELECT id, label, value, min, max, created_at_unixms FROM picks`
	args := []any{}
	if label = strings.TrimSpace(label); label != "" {
		q += ` WHERE label = ?`
		args = append(args, label)
	}
	q += ` ORDER BY id DESC LIMIT 1`

	p, err := scanPick(db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Pick{}, ErrEmpty
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPick(r rowScanner) (Pick, error) {
	var (
		p       Pick
		value   string
		created int64
	)
	if err := r.Scan(&p.ID, &p.Label, &value, &p.Min, &p.Max, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pick{}, err
		}
		return Pick{}, fmt.Errorf("scan pick: %w", err)
	}
	v, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Pick{}, fmt.Errorf("pick %d: bad value %q: %w", p.ID, value, err)
	}
	p.Value = v
	p.CreatedAt = time.UnixMilli(created)
	return p, nil
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite registers as "sqlite".
	db, err := sql.Open("sqlite", s.Path())
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	// WAL lets a running picker save while another process lists history.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("open history: %w", err)
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS picks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT NOT NULL,
			value TEXT NOT NULL,
			value_unix INTEGER NOT NULL,
			min TEXT NOT NULL,
			max TEXT NOT NULL,
			created_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_picks_label ON picks(label, id);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("migrate history: %w", err)
		}
	}
	return nil
}
