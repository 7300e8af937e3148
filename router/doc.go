// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method patterns.

# Routes

Public:

	GET  /health         → health check
	GET  /api/assets     → redeemable-asset catalog
	POST /api/redemption → redemption intake

Operator (X-Admin-Token):

	GET  /api/redemption             → list the queue
	GET  /api/redemption/{id}        → inspect one ticket
	POST /api/redemption/{id}/status → move a ticket through fulfillment

All routes are wrapped in request logging. CORS is applied once around the
whole mux in main, so preflight requests never reach the handlers.
*/
package router
