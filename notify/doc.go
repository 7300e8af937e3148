// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify posts best-effort ticket notifications to an operator
webhook.

The message is a single JSON POST of the form {"content": "..."} carrying
the ticket id, wallet address, up to five asset summaries, and the contact
channel - enough for an operator to start working the ticket without
touching the database.

Notification is strictly best-effort: the handler dispatches Send on a
goroutine after the ticket row has committed, logs any error, and never
surfaces it to the client. New returns nil when no webhook URL is
configured, and a nil Notifier's Send is a no-op, so the disabled case
needs no branching at call sites.
*/
package notify
