// Package registry talks to the device registry database: snapshot loading,
// the atomic rename batch, and undo statement generation. The schema (a
// DeviceStatus table keyed by DeviceID with a Name column) is an external
// contract owned by the registry application, not by this tool.
package registry

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/backmassage/zwrename/internal/planner"
)

// Store is the SQLite-backed registry handle.
type Store struct {
	db *sql.DB
}

// Open opens the registry database file and verifies connectivity.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open registry: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// HasDeviceTable reports whether the DeviceStatus table exists. Used by the
// check mode to validate the database before a run.
func (s *Store) HasDeviceTable(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'DeviceStatus'`,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspect registry schema: %w", err)
	}
	return n > 0, nil
}

// Snapshot loads the full DeviceID -> Name mapping in one query. The
// planner and executor work against this point-in-time map; the database is
// not re-read mid-run.
func (s *Store) Snapshot(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DeviceID, Name FROM DeviceStatus`)
	if err != nil {
		return nil, fmt.Errorf("load name snapshot: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("load name snapshot: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load name snapshot: %w", err)
	}
	return names, nil
}

// Apply performs all renames in one transaction. Each update is conditional
// (only when the stored name still differs from the target) as a defensive
// re-check against concurrent change; a zero-row match is not an error. Any
// statement failure rolls the whole batch back and reports zero applied.
func (s *Store) Apply(ctx context.Context, decisions []planner.Decision) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin rename batch: %w", err)
	}

	applied := 0
	for _, d := range decisions {
		_, err := tx.ExecContext(ctx,
			`UPDATE DeviceStatus SET Name = ? WHERE DeviceID = ? AND Name <> ?`,
			d.NewName, d.DeviceID, d.NewName)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("rename %s: %w", d.DeviceID, err)
		}
		applied++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit rename batch: %w", err)
	}
	return applied, nil
}
