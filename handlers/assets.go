// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/mochicards/mochi-redeem/middleware"
	"github.com/mochicards/mochi-redeem/models"
)

// AssetHandler serves the redeemable-asset catalog the intake form selects
// from. The catalog is loaded once at startup.
type AssetHandler struct {
	assets []models.AssetDetail
}

func NewAssetHandler(assets []models.AssetDetail) *AssetHandler {
	return &AssetHandler{assets: assets}
}

// ListAssets handles GET /api/assets
func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets := h.assets
	if assets == nil {
		assets = []models.AssetDetail{}
	}
	middleware.JSONResponse(w, http.StatusOK, models.ListAssetsResponse{Assets: assets})
}
