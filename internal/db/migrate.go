package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS task_log_entries (
		id         TEXT PRIMARY KEY,
		seq        INTEGER NOT NULL UNIQUE,
		date       TEXT NOT NULL,
		task       TEXT NOT NULL,
		completed  INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1)),
		rating     INTEGER NOT NULL CHECK(rating BETWEEN 0 AND 10),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_date ON task_log_entries(date)`,
}
