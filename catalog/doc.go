// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog loads the redeemable-asset catalog.

The catalog is a YAML file listing every card eligible for physical
redemption:

	assets:
	  - id: mochi-001
	    name: Charizard Holo
	    rarity: Rare Holo
	    image: https://cdn.example.com/mochi-001.png
	  - id: mochi-002
	    name: Pikachu Promo

Load reads it once at startup; the server serves it at GET /api/assets and
the intake form selects from it. Select narrows the catalog to a set of
chosen ids in catalog order, which is how the submission client builds the
assets array of the request payload.
*/
package catalog
