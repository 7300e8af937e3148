// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides ticket id generation and operator token validation.

# Ticket IDs

GenerateTicketID produces ids of the form RDM-NNNNNN with a uniformly
random six-digit suffix:

	id, err := auth.GenerateTicketID()

Six digits leave a real birthday-bound collision risk over the id space, so
the handler that persists tickets checks the primary key and regenerates on
conflict rather than trusting a single draw.

# Operator Tokens

Operator endpoints require the X-Admin-Token header. Validation compares the
provided token against the configured one in constant time:

	if err := auth.ValidateAdminToken(token, cfg.AdminToken); err != nil {
		// 401
	}

An empty configured token never validates, so operator endpoints are
effectively disabled until ADMIN_TOKEN is set.
*/
package auth
