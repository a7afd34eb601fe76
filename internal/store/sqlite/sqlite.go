// Package sqlite implements the shift store on a SQLite database. It keeps
// the exact semantics of the port: Load returns rows in insertion order and
// Save replaces the whole table in one transaction.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"turni/internal/core"
	"turni/internal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns all shifts ordered by rowid, which preserves the order Save
// inserted them in.
func (s *Store) Load(ctx context.Context) ([]core.Shift, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, hours, rate, note FROM shifts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []core.Shift
	for rows.Next() {
		var sh core.Shift
		if err := rows.Scan(&sh.Date, &sh.Hours, &sh.Rate, &sh.Note); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w", err)
	}
	return shifts, nil
}

// Save replaces the whole table: delete everything, insert everything, one
// transaction. Deliberately mirrors the full-rewrite contract of the file
// store rather than doing incremental appends.
func (s *Store) Save(ctx context.Context, shifts []core.Shift) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shifts`); err != nil {
		return fmt.Errorf("clear shifts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO shifts (date, hours, rate, note) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, sh := range shifts {
		if _, err := stmt.ExecContext(ctx, sh.Date, sh.Hours, sh.Rate, sh.Note); err != nil {
			return fmt.Errorf("insert shift: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
