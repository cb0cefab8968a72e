package shiftstat

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema
const currentSchemaVersion = 1

// Store is a SQLite-backed statistics database for components beyond the
// builtin table (non-standard residues, ligands).
type Store struct {
	db *sql.DB
}

// Open creates or opens the statistics database at the given path. Pragmas
// and the schema are applied automatically; the call is idempotent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statistics database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to statistics database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Import inserts statistics rows in one transaction. Existing
// (comp_id, atom_id) rows are replaced.
func (s *Store) Import(ctx context.Context, rows []Stat) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import statistics: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO shift_statistics (comp_id, atom_id, avg, std, min, max, count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(comp_id, atom_id) DO UPDATE SET
			avg = excluded.avg, std = excluded.std,
			min = excluded.min, max = excluded.max, count = excluded.count
	`)
	if err != nil {
		return fmt.Errorf("import statistics: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.CompID, r.AtomID, r.Avg, r.Std, r.Min, r.Max, r.Count); err != nil {
			return fmt.Errorf("import statistics %s %s: %w", r.CompID, r.AtomID, err)
		}
	}
	return tx.Commit()
}

// LoadAll reads every row, ordered deterministically.
func (s *Store) LoadAll(ctx context.Context) ([]Stat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT comp_id, atom_id, avg, std, min, max, count
		FROM shift_statistics
		ORDER BY comp_id ASC, atom_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("load statistics: %w", err)
	}
	defer rows.Close()

	var out []Stat
	for rows.Next() {
		var st Stat
		if err := rows.Scan(&st.CompID, &st.AtomID, &st.Avg, &st.Std, &st.Min, &st.Max, &st.Count); err != nil {
			return nil, fmt.Errorf("scan statistics row: %w", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load statistics: %w", err)
	}
	return out, nil
}

// Count returns the number of stored rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shift_statistics`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count statistics: %w", err)
	}
	return n, nil
}

// Oracle loads all rows into memory layered over the builtin table, so the
// store handle can be closed before validation starts.
func (s *Store) Oracle(ctx context.Context) (Oracle, error) {
	rows, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return Layered{NewTable(rows), NewBuiltin()}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}
