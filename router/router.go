// Copyright (c) 2025 Mochi Cards.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/mochicards/mochi-redeem/cliparse"
	"github.com/mochicards/mochi-redeem/handlers"
	"github.com/mochicards/mochi-redeem/middleware"
	"github.com/mochicards/mochi-redeem/models"
	"github.com/mochicards/mochi-redeem/notify"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, assets []models.AssetDetail, notifier *notify.Notifier) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	redemptionHandler := handlers.NewRedemptionHandler(db, cfg, notifier)
	assetHandler := handlers.NewAssetHandler(assets)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Redemption intake (public)
	mux.HandleFunc("POST /api/redemption", middleware.WithLogging(redemptionHandler.CreateRedemption))

	// Redeemable-asset catalog (public)
	mux.HandleFunc("GET /api/assets", middleware.WithLogging(assetHandler.ListAssets))

	// Operator queue (X-Admin-Token required)
	mux.HandleFunc("GET /api/redemption", middleware.WithLogging(adminHandler.ListRedemptions))
	mux.HandleFunc("GET /api/redemption/{id}", middleware.WithLogging(adminHandler.GetRedemption))
	mux.HandleFunc("POST /api/redemption/{id}/status", middleware.WithLogging(adminHandler.UpdateStatus))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mochi-redeem API v1"))
	})

	return mux
}
