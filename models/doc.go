// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateRedemptionRequest: walletAddress, assets, shipping, contact, acknowledged
  - UpdateStatusRequest: status

# Response Types

Types for JSON responses:

  - CreateRedemptionResponse: ticketId, status
  - ListRedemptionsResponse: requests
  - ListAssetsResponse: assets
  - UpdateStatusResponse: ticketId, status
  - ErrorResponse: error

# Domain Types

Internal data structures:

  - RedemptionRequest: persisted ticket with status and creation time
  - AssetDetail: one redeemable card (id, name, optional rarity/image)
  - ShippingAddress: physical delivery fields
  - ContactInfo: operator contact channel (method + handle)

# Constants

Status values:

	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusShipped  = "SHIPPED"
	StatusRejected = "REJECTED"

Contact methods:

	ContactTelegram = "telegram"
	ContactDiscord  = "discord"
	ContactWhatsApp = "whatsapp"

# Shared Validation Schema

ShippingAddress.RequiredFields is the single required-field schema for
shipping data. The server's validation gate iterates it directly; the
client-side form validator consumes it and layers its stricter address2
requirement on top. Keeping one schema avoids the two layers drifting apart.
*/
package models
