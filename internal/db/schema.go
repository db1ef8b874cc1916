package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id             TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    email          TEXT NOT NULL UNIQUE,
    password_hash  TEXT NOT NULL,
    roll_number    TEXT NOT NULL UNIQUE,
    hostel         TEXT,
    contact_number TEXT NOT NULL,
    role           TEXT NOT NULL DEFAULT 'USER' CHECK (role IN ('USER', 'ADMIN')),
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS items (
    id                 TEXT PRIMARY KEY,
    reported_by        TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    status             TEXT NOT NULL CHECK (status IN ('LOST', 'FOUND')),
    description        TEXT NOT NULL,
    location           TEXT NOT NULL,
    image              BLOB,
    image_mime         TEXT,
    description_vector BLOB NOT NULL,
    image_vector       BLOB,
    is_active          INTEGER NOT NULL DEFAULT 1,
    is_admin_report    INTEGER NOT NULL DEFAULT 0,
    has_match_found    INTEGER NOT NULL DEFAULT 0,
    reported_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_items_pool
    ON items(status, is_active);

CREATE TABLE IF NOT EXISTS matches (
    id               TEXT PRIMARY KEY,
    lost_item_id     TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
    found_item_id    TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
    loser_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    finder_id        TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    confidence_score REAL NOT NULL,
    match_status     TEXT NOT NULL DEFAULT 'PENDING' CHECK (match_status IN ('PENDING', 'APPROVED', 'REJECTED')),
    created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_matches_pair
    ON matches(lost_item_id, found_item_id);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
