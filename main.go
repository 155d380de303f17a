package main

import (
	"context"
	"log"
	"time"

	"eduplatform/backend/config"
	"eduplatform/backend/gateway"
	"eduplatform/backend/middleware"
	"eduplatform/backend/mirror"
	"eduplatform/backend/routes"
	"eduplatform/backend/store"
	"eduplatform/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(cfg.Mode())
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	var (
		gw       *gateway.Gateway
		catalog  store.Catalog
		stMirror store.Mirror
		identity store.IdentityProvider
	)

	if cfg.DemoMode {
		// Fully local: seeded defaults, in-memory mirror, no identity adapter.
		catalog = store.DefaultCatalog()
		stMirror = mirror.NewMemoryMirror()
	} else {
		db, err := gateway.InitDB(cfg)
		if err != nil {
			logger.Fatal("database init failed", "error", err)
		}
		gw = gateway.New(db, logger)
		if err := gw.SeedCatalog(store.DefaultCatalog().Courses()); err != nil {
			logger.Fatal("catalog seed failed", "error", err)
		}
		if err := gw.SeedQuizzes(gateway.DefaultQuizzes()); err != nil {
			logger.Fatal("quiz seed failed", "error", err)
		}
		catalog = gw

		if cfg.RedisAddr != "" {
			rm, err := mirror.NewRedisMirror(cfg.RedisAddr)
			if err != nil {
				logger.Warn("redis mirror unavailable, using in-memory mirror", "error", err)
				stMirror = mirror.NewMemoryMirror()
			} else {
				defer rm.Close()
				stMirror = rm
			}
		} else {
			stMirror = mirror.NewMemoryMirror()
		}

		if cfg.IdentityURL != "" {
			identity = gateway.NewIdentityClient(cfg.IdentityURL, "")
		}
	}

	st := store.New(store.Options{
		Catalog:   catalog,
		Mirror:    stMirror,
		Logger:    logger,
		LocalAuth: identity == nil,
		Seed:      cfg.DemoMode,
	})

	// Restore persisted state, then reconcile against the identity adapter.
	st.Hydrate(store.GuestKey)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := st.Reconcile(ctx, identity, cfg.DemoMode); err != nil {
		logger.Warn("session reconciliation failed", "error", err)
	}
	cancel()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, gw, catalog, cfg)

	// Start server
	logger.Info("server starting", "port", cfg.ServerPort, "mode", cfg.Mode())
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
