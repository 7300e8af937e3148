// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mochicards/mochi-redeem/auth"
	"github.com/mochicards/mochi-redeem/cliparse"
	"github.com/mochicards/mochi-redeem/db"
	"github.com/mochicards/mochi-redeem/models"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// Each call gets its own database, so tests stay independent.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A shared in-memory DB lives as long as one connection does
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8490,
		DatabaseURL:  "file:test.db",
		DatabaseType: "sqlite",
		AdminToken:   "test-admin-token",
	}
}

// TestAssets is a small catalog for handler tests
func TestAssets() []models.AssetDetail {
	return []models.AssetDetail{
		{ID: "a1", Name: "Card A", Rarity: "Rare"},
		{ID: "a2", Name: "Card B", Rarity: "Common"},
		{ID: "a3", Name: "Card C"},
	}
}

// CreateTestTicket inserts a redemption request directly and returns its id
func CreateTestTicket(t *testing.T, conn *sql.DB, wallet, status string) string {
	t.Helper()

	ticketID, err := auth.GenerateTicketID()
	if err != nil {
		t.Fatalf("Failed to generate ticket id: %v", err)
	}

	assets, _ := json.Marshal([]models.AssetDetail{{ID: "a1", Name: "Card A"}})
	shipping, _ := json.Marshal(models.ShippingAddress{
		FullName:    "Test User",
		Address1:    "1 Test St",
		City:        "Testville",
		State:       "TS",
		Postal:      "00000",
		Country:     "US",
		Email:       "test@example.com",
		PhoneCode:   "+1",
		PhoneNumber: "5550000000",
	})
	contact, _ := json.Marshal(models.ContactInfo{Method: models.ContactDiscord, Handle: "tester#0001"})

	_, err = conn.Exec(`
		INSERT INTO redemption_request (id, user_id, asset_details, shipping_address, contact_info, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ticketID, wallet, string(assets), string(shipping), string(contact), status, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test ticket: %v", err)
	}

	return ticketID
}

// ValidRedemptionPayload returns a payload that passes every server gate
func ValidRedemptionPayload() models.CreateRedemptionRequest {
	return models.CreateRedemptionRequest{
		WalletAddress: "Wabc123",
		Assets:        []models.AssetDetail{{ID: "a1", Name: "Card A"}},
		Shipping: models.ShippingAddress{
			FullName:    "Jane Doe",
			Address1:    "1 Main St",
			City:        "Metropolis",
			State:       "CA",
			Postal:      "90001",
			Country:     "US",
			Email:       "jane@example.com",
			PhoneCode:   "+1",
			PhoneNumber: "5551234567",
		},
		Contact:      models.ContactInfo{Method: models.ContactDiscord, Handle: "jane#0001"},
		Acknowledged: true,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
