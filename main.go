package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/mochicards/mochi-redeem/catalog"
	"github.com/mochicards/mochi-redeem/cliparse"
	"github.com/mochicards/mochi-redeem/db"
	"github.com/mochicards/mochi-redeem/middleware"
	"github.com/mochicards/mochi-redeem/notify"
	"github.com/mochicards/mochi-redeem/router"
)

func main() {
	var err error

	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to storage
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Load the redeemable-asset catalog
	assets, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		slog.Error("catalog load failed", "error", err, "path", cfg.CatalogPath)
		os.Exit(1)
	}
	slog.Info("Catalog loaded", "assets", len(assets))

	// Webhook notifier (nil when unconfigured)
	notifier := notify.New(cfg.WebhookURL)
	if notifier == nil {
		slog.Info("Webhook notifications disabled")
	}
	if cfg.AdminToken == "" {
		slog.Warn("ADMIN_TOKEN not set; operator endpoints disabled")
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, assets, notifier)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
