// Package main is the entry point for the taxi CMS API server.
// It loads configuration, connects to services, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gujarattaxi/internal/cache"
	"gujarattaxi/internal/config"
	"gujarattaxi/internal/database"
	"gujarattaxi/internal/handlers"
	"gujarattaxi/internal/resolver"
	"gujarattaxi/internal/router"
	"gujarattaxi/internal/scheduler"
	"gujarattaxi/internal/session"
	"gujarattaxi/internal/storage"
	"gujarattaxi/internal/store"
)

func main() {
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

	// Seed the built-in roles and default admin (no-op once data exists).
	if err := database.Seed(db); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Connect to Redis (session store).
	redisClient, err := cache.Connect(cfg.RedisAddr(), cfg.RedisPassword)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// In non-development environments, mark session cookies as Secure.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(redisClient, secureCookies)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	roleStore := store.NewRoleStore(db)
	blogStore := store.NewBlogStore(db)
	revisionStore := store.NewRevisionStore(db)
	routeStore := store.NewRouteStore(db)
	cityStore := store.NewCityStore(db)
	airportStore := store.NewAirportStore(db)
	categoryStore := store.NewCategoryStore(db)
	tagStore := store.NewTagStore(db)
	mediaStore := store.NewMediaStore(db)
	redirectStore := store.NewRedirectStore(db)
	auditStore := store.NewAuditLogStore(db)
	bookingStore := store.NewBookingStore(db)

	// Connect to S3-compatible object storage (optional, uploads are
	// rejected when unconfigured).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// The slug resolver fans out across the four content collections.
	slugResolver := resolver.New(routeStore, cityStore, airportStore, blogStore)

	// Background promoter for scheduled posts.
	var promoter *scheduler.Scheduler
	if cfg.SchedulerInterval > 0 {
		promoter = scheduler.New(blogStore, time.Duration(cfg.SchedulerInterval)*time.Second)
		promoter.Start()
		defer promoter.Stop()
	}

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(sessionStore, userStore, roleStore)
	blogHandlers := handlers.NewBlogs(blogStore, revisionStore, categoryStore, tagStore, auditStore, storageClient)
	directoryHandlers := handlers.NewDirectory(routeStore, cityStore, airportStore, auditStore)
	taxonomyHandlers := handlers.NewTaxonomy(categoryStore, tagStore, auditStore)
	roleHandlers := handlers.NewRoles(roleStore, auditStore)
	userHandlers := handlers.NewUsers(userStore, auditStore)
	mediaHandlers := handlers.NewMediaLibrary(mediaStore, auditStore, storageClient)
	redirectHandlers := handlers.NewRedirects(redirectStore, auditStore)
	bookingHandlers := handlers.NewBookings(bookingStore, auditStore)
	auditHandlers := handlers.NewAuditLogs(auditStore)
	publicHandlers := handlers.NewPublic(slugResolver, blogStore, routeStore, cityStore, airportStore, categoryStore, tagStore, cfg.SiteURL)

	bookingLimiter := router.NewBookingLimiter()
	defer bookingLimiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(router.Deps{
		Sessions:       sessionStore,
		Roles:          roleStore,
		Auth:           authHandlers,
		Blogs:          blogHandlers,
		Directory:      directoryHandlers,
		Taxonomy:       taxonomyHandlers,
		Roleh:          roleHandlers,
		Users:          userHandlers,
		Media:          mediaHandlers,
		Redirects:      redirectHandlers,
		Bookings:       bookingHandlers,
		AuditLogs:      auditHandlers,
		Public:         publicHandlers,
		AllowedOrigins: cfg.AllowedOrigins,
		BookingLimiter: bookingLimiter,
	})

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// media uploads to object storage.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
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
