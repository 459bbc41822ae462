package db

import (
	"database/sql"
	"fmt"
)

// schema holds the idempotent DDL statements applied at startup.
// The schema is small enough that versioned migration tooling is not carried.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users (email)`,
}

// MigrateUp applies the schema statements in order.
func MigrateUp(database *sql.DB) error {
	for i, stmt := range schema {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i, err)
		}
	}
	return nil
}
