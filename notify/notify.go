// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mochicards/mochi-redeem/models"
)

// maxAssetLines caps how many assets appear in the message body.
const maxAssetLines = 5

// Notifier posts ticket summaries to an operator webhook. A nil Notifier is
// valid and sends nothing, so callers don't have to branch on configuration.
type Notifier struct {
	url    string
	client *http.Client
}

// New returns a Notifier for the given webhook URL, or nil when the URL is
// empty (notification disabled).
func New(url string) *Notifier {
	if url == "" {
		return nil
	}
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type message struct {
	Content string `json:"content"`
}

// Send posts a formatted ticket summary to the webhook. Errors are returned
// for the caller to log; by contract they must never fail the request that
// created the ticket.
func (n *Notifier) Send(ctx context.Context, ticket models.RedemptionRequest) error {
	if n == nil {
		return nil
	}

	body, err := json.Marshal(message{Content: FormatTicket(ticket)})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// FormatTicket renders the operator-facing summary: ticket id, wallet, up
// to five asset lines with rarity, and the contact channel.
func FormatTicket(ticket models.RedemptionRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New redemption request %s\n", ticket.ID)
	fmt.Fprintf(&b, "Wallet: %s\n", ticket.UserID)
	fmt.Fprintf(&b, "Assets (%d):\n", len(ticket.AssetDetails))

	for i, a := range ticket.AssetDetails {
		if i == maxAssetLines {
			fmt.Fprintf(&b, "  ...and %d more\n", len(ticket.AssetDetails)-maxAssetLines)
			break
		}
		if a.Rarity != "" {
			fmt.Fprintf(&b, "  - %s (%s)\n", a.Name, a.Rarity)
		} else {
			fmt.Fprintf(&b, "  - %s\n", a.Name)
		}
	}

	fmt.Fprintf(&b, "Contact: %s %s", ticket.ContactInfo.Method, ticket.ContactInfo.Handle)
	return b.String()
}
