package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxemoda/storefront-backend/api/routes"
	"github.com/luxemoda/storefront-backend/internal/cart"
	"github.com/luxemoda/storefront-backend/internal/catalog"
	"github.com/luxemoda/storefront-backend/internal/checkout"
	"github.com/luxemoda/storefront-backend/pkg/config"
	"github.com/luxemoda/storefront-backend/pkg/db"
	"github.com/luxemoda/storefront-backend/pkg/instance"
	"github.com/luxemoda/storefront-backend/pkg/logger"
	"github.com/luxemoda/storefront-backend/pkg/metrics"
	"github.com/luxemoda/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	storeMetrics := metrics.NewStorefrontMetrics(registry)

	catalogSvc, err := catalog.NewService(catalog.NewLoader(cfg.Catalog), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	if err := catalogSvc.Load(context.Background()); err != nil {
		// serve anyway; readiness stays degraded until a refresh succeeds
		logg.Error(context.Background(), "initial catalog load failed", err)
	}

	deps := routes.Deps{
		Config:          cfg,
		Logger:          logg,
		Catalog:         catalogSvc,
		HTTPMetrics:     httpMetrics,
		MetricsRegistry: registry,
	}

	var persistence cart.Persistence
	switch cfg.Cart.Backend {
	case config.CartBackendRedis:
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		persistence = cart.NewRedisPersistence(redisClient, cfg.Cart.SessionTTL)
		deps.RedisPinger = redisClient
	case config.CartBackendMemory:
		persistence = cart.NewMemoryPersistence()
	default:
		dbClient, err := db.New(context.Background(), cfg.DB, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()
		persistence = cart.NewGormPersistence(dbClient.DB())
		deps.DBPinger = dbClient
	}

	cartStore, err := cart.NewStore(persistence, catalogSvc, cart.NewLogNotifier(logg), logg, storeMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}
	deps.Carts = cartStore

	var submitter checkout.Submitter
	if cfg.Checkout.WebhookURL != "" {
		submitter = checkout.NewWebhookSubmitter(cfg.Checkout.WebhookURL, cfg.Checkout.SubmitTimeout)
	}
	deps.Checkout = checkout.NewService(cartStore, submitter, cfg.Checkout.WhatsAppNumber, logg, storeMetrics)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"backend":  cfg.Cart.Backend,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting storefront api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(deps),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
