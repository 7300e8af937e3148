// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mochicards/mochi-redeem/auth"
	"github.com/mochicards/mochi-redeem/cliparse"
	"github.com/mochicards/mochi-redeem/middleware"
	"github.com/mochicards/mochi-redeem/models"
)

// AdminHandler exposes the operator side of the redemption queue: listing
// tickets, inspecting one, and moving it through fulfillment statuses.
type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	token := r.Header.Get("X-Admin-Token")
	if err := auth.ValidateAdminToken(token, h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return false
	}
	return true
}

// ListRedemptions handles GET /api/redemption
func (h *AdminHandler) ListRedemptions(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	rows, err := h.db.Query(`
		SELECT id, user_id, asset_details, shipping_address, contact_info, status, created_at
		FROM redemption_request
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		slog.Error("failed to query redemption requests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	requests := []models.RedemptionRequest{}
	for rows.Next() {
		req, err := scanRedemption(rows.Scan)
		if err != nil {
			slog.Error("failed to scan redemption request", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		requests = append(requests, req)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListRedemptionsResponse{Requests: requests})
}

// GetRedemption handles GET /api/redemption/{id}
func (h *AdminHandler) GetRedemption(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	ticketID := r.PathValue("id")
	if ticketID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Ticket id is required")
		return
	}

	row := h.db.QueryRow(`
		SELECT id, user_id, asset_details, shipping_address, contact_info, status, created_at
		FROM redemption_request
		WHERE id = $1
	`, ticketID)

	req, err := scanRedemption(row.Scan)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Redemption request not found")
		return
	}
	if err != nil {
		slog.Error("failed to query redemption request", "error", err, "ticket_id", ticketID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, req)
}

// UpdateStatus handles POST /api/redemption/{id}/status
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	ticketID := r.PathValue("id")
	if ticketID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Ticket id is required")
		return
	}

	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidStatus(req.Status) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown status")
		return
	}

	result, err := h.db.Exec(`
		UPDATE redemption_request SET status = $1 WHERE id = $2
	`, req.Status, ticketID)
	if err != nil {
		slog.Error("failed to update status", "error", err, "ticket_id", ticketID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Redemption request not found")
		return
	}

	slog.Info("redemption status updated", "ticket_id", ticketID, "status", req.Status)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateStatusResponse{
		TicketID: ticketID,
		Status:   req.Status,
	})
}

// scanRedemption reads one redemption row, deserializing the JSON blob
// columns back into their structured forms.
func scanRedemption(scan func(dest ...any) error) (models.RedemptionRequest, error) {
	var req models.RedemptionRequest
	var assetJSON, shippingJSON, contactJSON string
	var createdAt time.Time

	err := scan(&req.ID, &req.UserID, &assetJSON, &shippingJSON, &contactJSON, &req.Status, &createdAt)
	if err != nil {
		return models.RedemptionRequest{}, err
	}

	if err := json.Unmarshal([]byte(assetJSON), &req.AssetDetails); err != nil {
		return models.RedemptionRequest{}, err
	}
	if err := json.Unmarshal([]byte(shippingJSON), &req.ShippingAddress); err != nil {
		return models.RedemptionRequest{}, err
	}
	if err := json.Unmarshal([]byte(contactJSON), &req.ContactInfo); err != nil {
		return models.RedemptionRequest{}, err
	}

	req.CreatedAt = createdAt
	return req, nil
}
