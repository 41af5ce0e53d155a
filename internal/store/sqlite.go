// Package store persists a cleaned listings table into SQLite so an analyst
// can query it with plain SQL after the run.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/foodlens/foodlens-cli/internal/dataset"
)

// RunInfo is the metadata row recorded alongside each export.
type RunInfo struct {
	ID          string
	Source      string
	LoadedRows  int
	CleanRows   int
	SkippedRows int
	DroppedRows int
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	source        TEXT NOT NULL,
	loaded_rows   INTEGER NOT NULL,
	clean_rows    INTEGER NOT NULL,
	skipped_rows  INTEGER NOT NULL,
	dropped_rows  INTEGER NOT NULL,
	created_at    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS listings (
	run_id       TEXT NOT NULL REFERENCES runs(id),
	url          TEXT NOT NULL,
	name         TEXT NOT NULL,
	phone        TEXT NOT NULL,
	location     TEXT NOT NULL,
	online_order INTEGER,
	book_table   INTEGER,
	votes        INTEGER NOT NULL,
	rating       REAL NOT NULL,
	approx_cost  REAL NOT NULL
);
`

// ExportSQLite writes the cleaned table and its run metadata to the database
// at path, creating the schema if needed. All inserts run in one transaction.
func ExportSQLite(path string, t dataset.Table, run RunInfo) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, source, loaded_rows, clean_rows, skipped_rows, dropped_rows, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.LoadedRows, run.CleanRows, run.SkippedRows, run.DroppedRows,
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO listings (run_id, url, name, phone, location, online_order, book_table, votes, rating, approx_cost)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range t.Records {
		if _, err := stmt.Exec(
			run.ID, r.URL, r.Name, r.Phone, r.Location,
			nullableFlag(r.OnlineOrder), nullableFlag(r.BookTable),
			r.Votes, r.Rating, r.Cost,
		); err != nil {
			return fmt.Errorf("insert listing %q: %w", r.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func nullableFlag(v int) sql.NullInt64 {
	if v == dataset.FlagMissing {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(v), Valid: true}
}
