// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mochicards/mochi-redeem/auth"
	"github.com/mochicards/mochi-redeem/cliparse"
	"github.com/mochicards/mochi-redeem/middleware"
	"github.com/mochicards/mochi-redeem/models"
	"github.com/mochicards/mochi-redeem/notify"
)

// How many ticket ids to try before giving up on the six-digit space
const maxTicketIDAttempts = 5

type RedemptionHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	notifier *notify.Notifier
}

func NewRedemptionHandler(db *sql.DB, cfg cliparse.Config, notifier *notify.Notifier) *RedemptionHandler {
	return &RedemptionHandler{db: db, cfg: cfg, notifier: notifier}
}

// CreateRedemption handles POST /api/redemption
func (h *RedemptionHandler) CreateRedemption(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRedemptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Gate 1: wallet address
	wallet := strings.TrimSpace(req.WalletAddress)
	if wallet == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing wallet address")
		return
	}

	// Gate 2: keep only assets with both an id and a name
	assets := make([]models.AssetDetail, 0, len(req.Assets))
	for _, a := range req.Assets {
		if strings.TrimSpace(a.ID) == "" || strings.TrimSpace(a.Name) == "" {
			continue
		}
		assets = append(assets, a)
	}
	if len(assets) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Select at least one NFT to redeem")
		return
	}

	// Gate 3: shipping (address2 stays optional here; see models.RequiredFields)
	for _, value := range req.Shipping.RequiredFields() {
		if strings.TrimSpace(value) == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid or incomplete shipping address")
			return
		}
	}

	// Gate 4: contact
	if !models.ValidContactMethod(req.Contact.Method) || strings.TrimSpace(req.Contact.Handle) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid contact info")
		return
	}

	assetJSON, err := json.Marshal(assets)
	if err != nil {
		slog.Error("failed to serialize assets", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error creating redemption request")
		return
	}
	shippingJSON, err := json.Marshal(req.Shipping)
	if err != nil {
		slog.Error("failed to serialize shipping address", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error creating redemption request")
		return
	}
	contactJSON, err := json.Marshal(req.Contact)
	if err != nil {
		slog.Error("failed to serialize contact info", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error creating redemption request")
		return
	}

	// A six-digit suffix collides at real volumes, so generate and insert
	// until the primary key accepts it instead of trusting one draw.
	var ticketID string
	createdAt := time.Now().UTC()
	for attempt := 0; ; attempt++ {
		ticketID, err = auth.GenerateTicketID()
		if err != nil {
			slog.Error("failed to generate ticket id", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error creating redemption request")
			return
		}

		_, err = h.db.Exec(`
			INSERT INTO redemption_request (id, user_id, asset_details, shipping_address, contact_info, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, ticketID, wallet, string(assetJSON), string(shippingJSON), string(contactJSON), models.StatusPending, createdAt)

		if err == nil {
			break
		}
		if isUniqueViolation(err) && attempt < maxTicketIDAttempts-1 {
			slog.Warn("ticket id collision, regenerating", "ticket_id", ticketID, "attempt", attempt+1)
			continue
		}
		slog.Error("failed to insert redemption request", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error creating redemption request")
		return
	}

	slog.Info("redemption request created",
		"ticket_id", ticketID,
		"wallet", wallet,
		"assets", len(assets),
		"remote", middleware.GetClientIP(r),
	)

	// Best-effort notification, decoupled from the response path. The row
	// is already committed; a webhook failure is logged and nothing else.
	if h.notifier != nil {
		ticket := models.RedemptionRequest{
			ID:           ticketID,
			UserID:       wallet,
			AssetDetails: assets,
			ContactInfo:  req.Contact,
			Status:       models.StatusPending,
			CreatedAt:    createdAt,
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := h.notifier.Send(ctx, ticket); err != nil {
				slog.Error("webhook notification failed", "ticket_id", ticket.ID, "error", err)
			}
		}()
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRedemptionResponse{
		TicketID: ticketID,
		Status:   models.StatusPending,
	})
}

// isUniqueViolation matches the primary-key conflict messages of both
// supported drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
