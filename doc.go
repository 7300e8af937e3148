// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Mochi redemption API server.

The service handles physical-redemption tickets for the Mochi collectible
card platform: holders pick vault cards from the redeemable catalog, fill
in shipping and contact details, and submit a ticket that operators fulfill
by shipping the physical card.

# Starting the Server

The server requires a database location, via environment variables, a .env
file, or CLI flags:

	DATABASE_URL=file:redeem.db go run main.go

Or with flags:

	go run main.go -p 8490 -d file:redeem.db

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 8490)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - ADMIN_TOKEN (--admin-token): Operator token; unset disables admin endpoints
  - WEBHOOK_URL (--webhook): Operator notification webhook; unset disables it
  - CATALOG_PATH (--catalog): Redeemable-asset catalog YAML

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (intake, catalog, operator queue)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and the shared shipping schema
  - auth: Ticket id generation and operator token validation
  - db: Connection and schema creation
  - cliparse: Configuration parsing
  - catalog: Redeemable-asset catalog loading
  - notify: Best-effort webhook notifications
  - form, client: the client side of the workflow (form state, validation,
    submission), shared with embedding frontends and operator tooling

See package documentation for each component.
*/
package main
