// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Redemption request status constants.
// PENDING is the only status this service writes; the rest are set by
// operators working the fulfillment queue.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusShipped  = "SHIPPED"
	StatusRejected = "REJECTED"
)

// Contact method constants
const (
	ContactTelegram = "telegram"
	ContactDiscord  = "discord"
	ContactWhatsApp = "whatsapp"
)

// ValidStatus reports whether s is a known redemption status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusShipped, StatusRejected:
		return true
	}
	return false
}

// ValidContactMethod reports whether m is an accepted contact method.
func ValidContactMethod(m string) bool {
	switch m {
	case ContactTelegram, ContactDiscord, ContactWhatsApp:
		return true
	}
	return false
}

// Request types

type CreateRedemptionRequest struct {
	WalletAddress string          `json:"walletAddress"`
	Assets        []AssetDetail   `json:"assets"`
	Shipping      ShippingAddress `json:"shipping"`
	Contact       ContactInfo     `json:"contact"`
	Acknowledged  bool            `json:"acknowledged"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response types

type CreateRedemptionResponse struct {
	TicketID string `json:"ticketId"`
	Status   string `json:"status"`
}

type ListRedemptionsResponse struct {
	Requests []RedemptionRequest `json:"requests"`
}

type ListAssetsResponse struct {
	Assets []AssetDetail `json:"assets"`
}

type UpdateStatusResponse struct {
	TicketID string `json:"ticketId"`
	Status   string `json:"status"`
}

// ErrorResponse carries a single user-facing message. Validation failures
// pass the exact gate message through; internal failures use a generic one.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Domain types

// AssetDetail identifies one redeemable card. Rarity and Image are
// display-only and optional.
type AssetDetail struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rarity string `json:"rarity,omitempty"`
	Image  string `json:"image,omitempty"`
}

type ShippingAddress struct {
	FullName    string `json:"fullName"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state"`
	Postal      string `json:"postal"`
	Country     string `json:"country"`
	Email       string `json:"email"`
	PhoneCode   string `json:"phoneCode"`
	PhoneNumber string `json:"phoneNumber"`
}

// RequiredFields maps field name to value for every shipping field the
// server requires to be non-blank. Address2 is deliberately absent: the
// intake form requires it as stricter UX guidance, the server does not.
// This map is the single source of truth consulted by both layers.
func (s ShippingAddress) RequiredFields() map[string]string {
	return map[string]string{
		"fullName":    s.FullName,
		"address1":    s.Address1,
		"city":        s.City,
		"state":       s.State,
		"postal":      s.Postal,
		"country":     s.Country,
		"email":       s.Email,
		"phoneCode":   s.PhoneCode,
		"phoneNumber": s.PhoneNumber,
	}
}

type ContactInfo struct {
	Method string `json:"method"`
	Handle string `json:"handle"`
}

// RedemptionRequest is the persisted ticket. The asset, shipping, and
// contact structures are stored as JSON text blobs; the table schema stays
// flexible while writes are validated.
type RedemptionRequest struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	AssetDetails    []AssetDetail   `json:"assetDetails"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	ContactInfo     ContactInfo     `json:"contactInfo"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}
