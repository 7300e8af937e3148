// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"regexp"
)

var (
	ErrInvalidAdminToken = errors.New("invalid admin token")
)

// Ticket ids are "RDM-" plus a six-digit suffix in [100000, 999999].
const ticketPrefix = "RDM-"

var ticketIDPattern = regexp.MustCompile(`^RDM-\d{6}$`)

// GenerateTicketID creates a redemption ticket id of the form RDM-NNNNNN.
// The suffix is drawn uniformly from [100000, 999999] using crypto/rand.
// Callers must still check the store for collisions before committing.
func GenerateTicketID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate ticket id: %w", err)
	}
	return fmt.Sprintf("%s%d", ticketPrefix, n.Int64()+100000), nil
}

// ValidTicketID reports whether id matches the RDM-NNNNNN format.
func ValidTicketID(id string) bool {
	return ticketIDPattern.MatchString(id)
}

// ValidateAdminToken checks the operator token from a request header against
// the configured token in constant time.
func ValidateAdminToken(provided, configured string) error {
	if configured == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) != 1 {
		return ErrInvalidAdminToken
	}
	return nil
}
