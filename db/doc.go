// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

sqlite (the default) opens the file with WAL journaling and a busy timeout;
postgres passes the connection string through to lib/pq.

# Schema Creation

CreateSchema initializes the one table this service owns:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. This is bootstrap-on-start,
not a migration system.

# Tables

  - redemption_request: one row per accepted ticket. The asset, shipping,
    and contact structures are stored as JSON text columns; their shape is
    validated at write time, the table itself stays schema-flexible.

# Indexes

  - redemption_request.status (operator queue queries)
  - redemption_request.user_id (per-wallet lookups)
*/
package db
