// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Open connects to the configured storage engine. dbType is "sqlite" or
// "postgres"; dbURL is a file path (sqlite) or connection string (postgres).
// The returned handle is the single shared connection pool for the process.
func Open(dbType, dbURL string) (*sql.DB, error) {
	switch dbType {
	case "sqlite":
		return sql.Open("sqlite", sqliteDSN(dbURL))
	case "postgres":
		return sql.Open("postgres", dbURL)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// sqliteDSN appends the pragmas every connection needs: WAL for durability
// with concurrent readers, and a busy timeout so overlapping writers queue
// instead of failing.
func sqliteDSN(path string) string {
	pragmas := "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	if strings.Contains(path, "?") {
		return path + "&" + pragmas
	}
	return path + "?" + pragmas
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Redemption requests
CREATE TABLE IF NOT EXISTS redemption_request (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    asset_details TEXT NOT NULL,
    shipping_address TEXT NOT NULL,
    contact_info TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'PENDING',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_redemption_request_status ON redemption_request(status);
CREATE INDEX IF NOT EXISTS idx_redemption_request_user_id ON redemption_request(user_id);
`
