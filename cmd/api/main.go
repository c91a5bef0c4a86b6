// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"

	"github.com/gleethreads/storefront-api/internal/admin"
	"github.com/gleethreads/storefront-api/internal/auth"
	"github.com/gleethreads/storefront-api/internal/category"
	"github.com/gleethreads/storefront-api/internal/config"
	"github.com/gleethreads/storefront-api/internal/content"
	"github.com/gleethreads/storefront-api/internal/core"
	"github.com/gleethreads/storefront-api/internal/coupon"
	"github.com/gleethreads/storefront-api/internal/health"
	"github.com/gleethreads/storefront-api/internal/product"
	"github.com/gleethreads/storefront-api/internal/server"
	"github.com/gleethreads/storefront-api/internal/settings"
	"github.com/gleethreads/storefront-api/internal/subscribe"
	"github.com/gleethreads/storefront-api/internal/upload"
	"github.com/gleethreads/storefront-api/internal/user"
)

const (
	drainDelay = 5 * time.Second

	adminPasswordEnv = "ADMIN_PASSWORD"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	adminEmail := flag.String("create-admin", "", "create an admin with this email and exit")
	adminName := flag.String("admin-name", "Store Admin", "display name for -create-admin")
	flag.Parse()

	decimal.MarshalJSONWithoutQuotes = true

	var err error
	if *adminEmail != "" {
		err = createAdmin(*configPath, *adminName, *adminEmail)
	} else {
		err = run(*configPath)
	}

	if err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, syncLogger := core.NewLogger(cfg.Log)
	defer syncLogger() //nolint:errcheck // stdout sync fails on some terminals
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	tokens, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"ttl", tokens.TTL(),
	)

	userSvc := user.NewService(user.NewRepository(db.DB))
	authSvc := auth.NewService(tokens, userSvc, auth.NewRevocationStore(redis.Client))
	authHandler := auth.NewHandler(authSvc)

	categorySvc := category.NewService(category.NewRepository(db.DB))
	categoryHandler := category.NewHandler(categorySvc)

	productSvc := product.NewService(product.NewRepository(db.DB))
	productHandler := product.NewHandler(productSvc)

	couponSvc := coupon.NewService(coupon.NewRepository(db.DB))
	couponHandler := coupon.NewHandler(couponSvc)

	subscribers := subscribe.NewRepository(db.DB)
	subscribeHandler := subscribe.NewHandler(subscribers)

	settingsHandler := settings.NewHandler(cfg.Store)

	pages, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content pages: %w", err)
	}
	contentHandler := content.NewHandler(pages)

	healthDeps := []health.Dependency{
		{Name: "database", Checker: db},
		{Name: "redis", Checker: redis},
	}

	var blobs upload.BlobStore
	if cfg.Storage.Enabled() {
		s3Store, storeErr := upload.NewS3Store(ctx, cfg.Storage)
		if storeErr != nil {
			return storeErr
		}
		blobs = s3Store
		healthDeps = append(healthDeps, health.Dependency{
			Name:     "storage",
			Checker:  s3Store,
			Optional: true,
		})
		logger.Info("object storage configured", "bucket", cfg.Storage.Bucket)
	} else {
		logger.Warn("object storage not configured, uploads disabled")
	}
	uploadHandler := upload.NewHandler(
		upload.NewService(blobs, cfg.Upload.MaxBytes, cfg.Upload.KeyPrefix),
	)

	healthHandler := health.NewHandler(healthDeps...)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Version:            cfg.App.Version,
		CountProducts:      productSvc.Count,
		CountCategories:    categorySvc.Count,
		CountActiveCoupons: couponSvc.CountActive,
		CountSubscribers:   subscribers.Count,
		DBStats:            db.Stats,
		RedisStats:         redis.PoolStats,
		DBPing:             db.Ping,
		RedisPing:          redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	mountRoutes(srv.Router(), routeDeps{
		Config:    cfg,
		Logger:    logger,
		Redis:     redis.Client,
		Verifier:  authSvc,
		Registry:  registry,
		Tracing:   telemetry != nil,
		Health:    healthHandler,
		Auth:      authHandler,
		Category:  categoryHandler,
		Product:   productHandler,
		Coupon:    couponHandler,
		Subscribe: subscribeHandler,
		Settings:  settingsHandler,
		Content:   contentHandler,
		Upload:    uploadHandler,
		Admin:     adminHandler,
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// createAdmin seeds an admin account from the command line. The password is
// read from the environment so it never shows up in shell history.
func createAdmin(configPath, name, email string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	password := os.Getenv(adminPasswordEnv)
	if password == "" {
		return fmt.Errorf("%s must be set", adminPasswordEnv)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, syncLogger := core.NewLogger(cfg.Log)
	defer syncLogger() //nolint:errcheck // stdout sync fails on some terminals

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // process exits right after

	u, err := user.NewService(user.NewRepository(db.DB)).CreateAdmin(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			return fmt.Errorf("an account for %s already exists", email)
		}
		return err
	}

	logger.Info("admin created", "user_id", u.ID, "email", u.Email)
	return nil
}
