package database

import "github.com/jmoiron/sqlx"

// schema is applied on every start; statements are idempotent.
// Times are stored as unix milliseconds.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    date INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    done INTEGER NOT NULL DEFAULT 0,
    user_id TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_user_id ON items(user_id, date);
`

func runMigrations(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
