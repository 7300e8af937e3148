// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8490)
  - DatabaseURL: sqlite file path or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminToken: Operator token for admin endpoints (optional; unset disables them)
  - WebhookURL: Ticket notification webhook (optional; unset disables it)
  - CatalogPath: Redeemable-asset catalog YAML (optional)

# CLI Flags

	-p            Server port
	-d            Database URL or file path
	-t            Database type
	--admin-token Operator token
	--webhook     Notification webhook URL
	--catalog     Catalog YAML path

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_TOKEN   → --admin-token
	WEBHOOK_URL   → --webhook
	CATALOG_PATH  → --catalog

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing, so local development can keep everything
in one place.

# Validation

ParseFlags returns an error if DATABASE_URL is missing or DATABASE_TYPE is
not sqlite/postgres. AdminToken, WebhookURL, and CatalogPath are optional:
leaving them unset disables the corresponding feature rather than failing
startup.
*/
package cliparse
