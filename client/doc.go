// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the submission side of the redemption workflow: it turns
a validated form into a ticket-store request and interprets the response.

# Contract

	c := client.New("https://api.example.com")
	ticketID, err := c.Submit(ctx, state, assets, walletAddress)

Exactly one of ticketID or err is produced. Submit performs a single POST
with no retry and does not re-validate the form; callers run form.Validate
first and only call Submit on a clean result.

# Response Interpretation

Failure responses are mapped to the server's own error message when the
body parses as {"error": ...}, and a generic failure message otherwise.
Success responses must carry the ticket id in ticketId (or the legacy id
field); a success body with neither is treated as a failure
(ErrTicketIDMissing).

# Submitting Flag

Submitting reports whether a call is in flight; it is set for the full
duration of Submit and cleared on every path, so the UI can disable the
submit control without leaking a stuck state on errors.
*/
package client
