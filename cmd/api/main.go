package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/brokerdesk/brokerage-service/internal/api/http"
	"github.com/brokerdesk/brokerage-service/internal/api/http/handlers"
	"github.com/brokerdesk/brokerage-service/internal/auth"
	"github.com/brokerdesk/brokerage-service/internal/config"
	"github.com/brokerdesk/brokerage-service/internal/events"
	"github.com/brokerdesk/brokerage-service/internal/observability"
	"github.com/brokerdesk/brokerage-service/internal/persistence"
	"github.com/brokerdesk/brokerage-service/internal/repository"
	"github.com/brokerdesk/brokerage-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.UsesDefaultSecret() {
		logger.Warn("AUTH_JWT_SECRET not set; signing tokens with the built-in default secret")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var conns repository.Connections
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		conns.Postgres = pg.PoolHandle()
	case config.BackendRedis:
		rdb := persistence.NewRedis(ctx, cfg.Redis, logger)
		defer rdb.Close()
		conns.Redis = rdb.Client
	}

	store, err := repository.Open(cfg.Store, conns)
	if err != nil {
		logger.Fatal("failed to open record store", zap.Error(err))
	}
	logger.Info("record store ready", zap.String("backend", store.Backend))

	credentials, err := auth.NewCredentialStore(cfg.Auth)
	if err != nil {
		logger.Fatal("failed to hash admin password", zap.Error(err))
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())

	dispatcher := events.NewInMemoryDispatcher()
	service.NewAuditService(dispatcher, logger).RegisterHandlers()

	authService := service.NewAuthService(credentials, tokens, logger)
	recordService := service.NewRecordService(service.RecordDependencies{
		PaymentRepo:  store.Payments,
		EmployeeRepo: store.Employees,
		Dispatcher:   dispatcher,
	}, logger)
	reportService := service.NewReportService(store.Payments, store.Employees)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:        cfg.App.RequestTimeout(),
		AllowedOrigins: cfg.App.AllowedOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store.Backend, store, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Payments:       handlers.NewPaymentsHandler(recordService),
		Employees:      handlers.NewEmployeesHandler(recordService),
		Reports:        handlers.NewReportsHandler(reportService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
		LoginLimiter:   httptransport.LoginRateLimiter(cfg.App.LoginRatePerMinute),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
