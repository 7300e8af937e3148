// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package form models the client side of the redemption workflow: the
multi-step form's field values and their validation.

# Form State

State holds everything the user has entered: selected asset ids, shipping
address, contact channel, the acknowledgement checkbox, and the typed
confirmation phrase. It is ephemeral - created empty when the workflow
opens, Reset on close or restart, and discarded after a successful submit.

# Validation

Validate is a pure function from State to a field → message map:

	errs := form.Validate(state)
	if len(errs) == 0 {
		// safe to submit
	}

Rules:

  - at least one selected asset
  - shipping fields non-blank after trim (the server's shared schema, plus
    address2 which only the form requires)
  - email matches a basic local@domain shape
  - a contact handle
  - terms acknowledged
  - the arming phrase typed exactly (case-insensitive after trim)

The arming phrase gate exists because redemption burns the on-chain asset;
it is a purely local guard and is not transmitted to the server.
*/
package form
