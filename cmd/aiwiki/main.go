// Package main is the entry point for the AI Wiki directory server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aiwiki/internal/auth"
	"aiwiki/internal/cache"
	"aiwiki/internal/config"
	"aiwiki/internal/database"
	"aiwiki/internal/favorites"
	"aiwiki/internal/handlers"
	"aiwiki/internal/render"
	"aiwiki/internal/router"
	"aiwiki/internal/session"
	"aiwiki/internal/store"
)

func main() {
	// Structured logger for everything the server does.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"auth_mode", cfg.AuthMode,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the starter catalog (no-op if tools already exist).
	if err := database.Seed(db); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (sessions, favorites, and the page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize the HTML template renderer.
	// In dev mode, templates load assets from CDN; in production they use
	// compiled local files embedded in the binary.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Initialize data stores and the favorites ledger.
	toolStore := store.NewToolStore(db)
	userStore := store.NewUserStore(db)
	ledger := favorites.NewLedger(valkeyClient)
	pageCache := cache.NewDirectoryCache(valkeyClient, cache.DefaultDirectoryTTL)

	// Select the credential verifier. Demo mode accepts any well-formed
	// email/password pair; local mode checks the users table.
	var verifier auth.Verifier
	switch cfg.AuthMode {
	case config.AuthModeLocal:
		verifier = auth.NewLocalVerifier(userStore)
	default:
		verifier = auth.NewDemoVerifier()
	}

	// Create handler groups with their dependencies.
	directoryHandlers := handlers.NewDirectory(renderer, toolStore, ledger, pageCache)
	toolHandlers := handlers.NewTools(renderer, toolStore, pageCache)
	favoriteHandlers := handlers.NewFavorites(ledger)
	authHandlers := handlers.NewAuth(renderer, sessionStore, verifier, cfg.AuthMode == config.AuthModeDemo)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, directoryHandlers, toolHandlers, favoriteHandlers, authHandlers, secureCookies)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
