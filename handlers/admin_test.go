// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mochicards/mochi-redeem/models"
	"github.com/mochicards/mochi-redeem/testutil"
)

func adminHeaders() map[string]string {
	return map[string]string{"X-Admin-Token": "test-admin-token"}
}

func TestListRedemptions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewAdminHandler(conn, testutil.GetTestConfig())

	t.Run("empty queue", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/redemption", nil, adminHeaders())
		w := httptest.NewRecorder()
		handler.ListRedemptions(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.ListRedemptionsResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Requests) != 0 {
			t.Errorf("Expected empty list, got %d", len(resp.Requests))
		}
	})

	t.Run("returns tickets", func(t *testing.T) {
		id1 := testutil.CreateTestTicket(t, conn, "Wfirst", models.StatusPending)
		id2 := testutil.CreateTestTicket(t, conn, "Wsecond", models.StatusShipped)

		req := testutil.MakeRequest("GET", "/api/redemption", nil, adminHeaders())
		w := httptest.NewRecorder()
		handler.ListRedemptions(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.ListRedemptionsResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Requests) != 2 {
			t.Fatalf("Expected 2 tickets, got %d", len(resp.Requests))
		}

		seen := map[string]bool{}
		for _, r := range resp.Requests {
			seen[r.ID] = true
			if len(r.AssetDetails) == 0 {
				t.Errorf("Ticket %s missing deserialized asset details", r.ID)
			}
			if r.ShippingAddress.FullName == "" {
				t.Errorf("Ticket %s missing deserialized shipping address", r.ID)
			}
		}
		if !seen[id1] || !seen[id2] {
			t.Errorf("Expected tickets %s and %s in listing", id1, id2)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/redemption", nil, nil)
		w := httptest.NewRecorder()
		handler.ListRedemptions(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("wrong token", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/redemption", nil, map[string]string{"X-Admin-Token": "nope"})
		w := httptest.NewRecorder()
		handler.ListRedemptions(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestListRedemptionsDisabledWithoutToken(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	// No configured token: nothing authorizes, not even an empty header
	cfg := testutil.GetTestConfig()
	cfg.AdminToken = ""
	handler := NewAdminHandler(conn, cfg)

	req := testutil.MakeRequest("GET", "/api/redemption", nil, map[string]string{"X-Admin-Token": ""})
	w := httptest.NewRecorder()
	handler.ListRedemptions(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestGetRedemption(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewAdminHandler(conn, testutil.GetTestConfig())
	ticketID := testutil.CreateTestTicket(t, conn, "Wabc123", models.StatusPending)

	t.Run("found", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/redemption/"+ticketID, nil, adminHeaders())
		req.SetPathValue("id", ticketID)
		w := httptest.NewRecorder()
		handler.GetRedemption(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.RedemptionRequest
		testutil.AssertJSON(t, w, &resp)
		if resp.ID != ticketID {
			t.Errorf("Expected id %s, got %s", ticketID, resp.ID)
		}
		if resp.UserID != "Wabc123" {
			t.Errorf("Expected userId Wabc123, got %s", resp.UserID)
		}
		if resp.ContactInfo.Method != models.ContactDiscord {
			t.Errorf("Expected contact method discord, got %s", resp.ContactInfo.Method)
		}
		if resp.CreatedAt.IsZero() {
			t.Error("Expected createdAt to be set")
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/redemption/RDM-000001", nil, adminHeaders())
		req.SetPathValue("id", "RDM-000001")
		w := httptest.NewRecorder()
		handler.GetRedemption(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("unauthorized", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/redemption/"+ticketID, nil, nil)
		req.SetPathValue("id", ticketID)
		w := httptest.NewRecorder()
		handler.GetRedemption(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestUpdateStatus(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewAdminHandler(conn, testutil.GetTestConfig())
	ticketID := testutil.CreateTestTicket(t, conn, "Wabc123", models.StatusPending)

	tests := []struct {
		name           string
		ticketID       string
		status         string
		expectedStatus int
	}{
		{"approve", ticketID, models.StatusApproved, http.StatusOK},
		{"ship", ticketID, models.StatusShipped, http.StatusOK},
		{"unknown status", ticketID, "LOST", http.StatusBadRequest},
		{"empty status", ticketID, "", http.StatusBadRequest},
		{"missing ticket", "RDM-000001", models.StatusApproved, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := models.UpdateStatusRequest{Status: tt.status}
			req := testutil.MakeRequest("POST", "/api/redemption/"+tt.ticketID+"/status", body, adminHeaders())
			req.SetPathValue("id", tt.ticketID)
			w := httptest.NewRecorder()
			handler.UpdateStatus(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var persisted string
				if err := conn.QueryRow("SELECT status FROM redemption_request WHERE id = $1", tt.ticketID).Scan(&persisted); err != nil {
					t.Fatalf("Failed to read status: %v", err)
				}
				if persisted != tt.status {
					t.Errorf("Expected persisted status %q, got %q", tt.status, persisted)
				}
			}
		})
	}
}
