// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mochicards/mochi-redeem/catalog"
	"github.com/mochicards/mochi-redeem/form"
	"github.com/mochicards/mochi-redeem/models"
)

// ErrTicketIDMissing is returned when a success response carries no ticket
// identifier under either ticketId or id.
var ErrTicketIDMissing = errors.New("ticket id missing in response")

const genericFailure = "Redemption request failed"

// Client submits validated redemption forms to the ticket store. Callers
// are expected to run form.Validate first; Submit does not re-validate.
type Client struct {
	baseURL string
	http    *http.Client

	mu         sync.Mutex
	submitting bool
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Submitting reports whether a submit call is currently in flight. The UI
// disables the submit control while this is true.
func (c *Client) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

func (c *Client) setSubmitting(v bool) {
	c.mu.Lock()
	c.submitting = v
	c.mu.Unlock()
}

// submitResponse accepts both the canonical ticketId field and the legacy
// id field.
type submitResponse struct {
	TicketID string `json:"ticketId"`
	ID       string `json:"id"`
}

// Submit builds the request payload from the form's selected assets,
// performs exactly one POST, and returns either a ticket id or an error -
// never both. There is no retry; the user resubmits manually on failure.
func (c *Client) Submit(ctx context.Context, state form.State, assets []models.AssetDetail, walletAddress string) (string, error) {
	c.setSubmitting(true)
	defer c.setSubmitting(false)

	payload := models.CreateRedemptionRequest{
		WalletAddress: walletAddress,
		Assets:        catalog.Select(assets, state.SelectedAssetIDs),
		Shipping:      state.Shipping,
		Contact: models.ContactInfo{
			Method: state.ContactMethod,
			Handle: state.ContactHandle,
		},
		Acknowledged: state.Acknowledged,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/redemption", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit redemption request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Prefer the server's own message; fall back to a generic one when
		// the body is not JSON or carries no error field.
		var errResp models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
			return "", errors.New(genericFailure)
		}
		return "", errors.New(errResp.Error)
	}

	var success submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&success); err != nil {
		return "", ErrTicketIDMissing
	}

	ticketID := success.TicketID
	if ticketID == "" {
		ticketID = success.ID
	}
	if ticketID == "" {
		return "", ErrTicketIDMissing
	}

	return ticketID, nil
}
