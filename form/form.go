// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"regexp"
	"strings"

	"github.com/mochicards/mochi-redeem/models"
)

// ArmingPhrase is the literal word the user must type to enable the submit
// control. Matching is case-insensitive after trimming.
const ArmingPhrase = "BURN"

// Basic local@domain shape; the server does the same check.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// State holds the redemption form's field values. It is ephemeral and
// client-owned: initialized empty when the workflow opens, reset on close or
// restart, and never persisted.
type State struct {
	SelectedAssetIDs []string
	Shipping         models.ShippingAddress
	ContactMethod    string
	ContactHandle    string

	// Local-only gates. Neither is re-checked server-side.
	ConfirmationPhrase string
	Acknowledged       bool
}

// Reset clears the form back to its initial empty state.
func (s *State) Reset() {
	*s = State{}
}

// Validate checks every rule and returns a map of field name to error
// message. An empty map means the form may be submitted. Pure function:
// no side effects, same input always yields the same error set.
func Validate(s State) map[string]string {
	errs := make(map[string]string)

	if len(s.SelectedAssetIDs) == 0 {
		errs["assets"] = "Select at least one asset"
	}

	// Server-required shipping fields come from the shared schema. Email
	// gets its own message below, and phoneCode is preselected by the UI so
	// it is never blank client-side.
	for field, value := range s.Shipping.RequiredFields() {
		if field == "email" || field == "phoneCode" {
			continue
		}
		if strings.TrimSpace(value) == "" {
			errs[field] = "Required"
		}
	}
	// The form is stricter than the server here: address2 is required as UX
	// guidance even though the server accepts its absence.
	if strings.TrimSpace(s.Shipping.Address2) == "" {
		errs["address2"] = "Required"
	}

	if !emailPattern.MatchString(strings.TrimSpace(s.Shipping.Email)) {
		errs["email"] = "Enter a valid email"
	}

	if strings.TrimSpace(s.ContactHandle) == "" {
		errs["contactHandle"] = "Provide a handle"
	}

	if !s.Acknowledged {
		errs["acknowledged"] = "You must accept the terms"
	}

	if !strings.EqualFold(strings.TrimSpace(s.ConfirmationPhrase), ArmingPhrase) {
		errs["confirmationPhrase"] = "Type " + ArmingPhrase + " to confirm"
	}

	return errs
}
