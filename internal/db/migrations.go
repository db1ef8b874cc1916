package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{
	// Migration 1: enforce pairwise match uniqueness for databases created
	// before the unique index existed. Duplicate orchestration runs rely on
	// this index to turn repeat inserts into no-ops.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_matches_pair
	     ON matches(lost_item_id, found_item_id)`,
	// Migration 2: composite index for candidate pool scans.
	`CREATE INDEX IF NOT EXISTS idx_items_pool
	     ON items(status, is_active)`,
}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
