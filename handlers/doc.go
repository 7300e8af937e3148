// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the redemption API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - RedemptionHandler: ticket intake (the public POST endpoint)
  - AssetHandler: redeemable-asset catalog
  - AdminHandler: operator queue (list, inspect, status updates)

	redemptionHandler := handlers.NewRedemptionHandler(db, cfg, notifier)

# Intake Flow

POST /api/redemption runs four validation gates in order, each
short-circuiting with a 400 and its own message:

 1. walletAddress non-blank        → "Missing wallet address"
 2. ≥1 asset with id and name     → "Select at least one NFT to redeem"
 3. shipping fields non-blank      → "Invalid or incomplete shipping address"
 4. known contact method + handle  → "Invalid contact info"

A passing payload gets a ticket id (RDM-NNNNNN, regenerated on primary-key
collision), one inserted row with status PENDING, and a 201. The webhook
notification fires on a goroutine after the insert; its failures are logged
and never affect the response. Anything unexpected between the gates and
the insert is a generic 500 with detail only in the server logs.

# Operator Flow

Operator endpoints require the X-Admin-Token header:

	GET  /api/redemption             → ListRedemptions (newest first)
	GET  /api/redemption/{id}        → GetRedemption
	POST /api/redemption/{id}/status → UpdateStatus

Statuses beyond PENDING (APPROVED, SHIPPED, REJECTED) are operator-managed;
the intake path never transitions a ticket.
*/
package handlers
