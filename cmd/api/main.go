package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/freightdev/openhwy-sub001/internal/auth"
	"github.com/freightdev/openhwy-sub001/internal/config"
	"github.com/freightdev/openhwy-sub001/internal/database"
	"github.com/freightdev/openhwy-sub001/internal/database/migration"
	handlers "github.com/freightdev/openhwy-sub001/internal/http/handler"
	"github.com/freightdev/openhwy-sub001/internal/logging"
	"github.com/freightdev/openhwy-sub001/internal/otel"
	"github.com/freightdev/openhwy-sub001/internal/repository/postgres"
	"github.com/freightdev/openhwy-sub001/internal/service"
	"github.com/freightdev/openhwy-sub001/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title TMS API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger, cfg.ServiceName)
	if err != nil {
		logger.Error("tracing_init_failed", "error", err.Error())
		os.Exit(1)
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logger.Error("database_connect_failed", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
		logger.Error("database_migration_failed", "error", err.Error())
		os.Exit(1)
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		logger.Error("storage_init_failed", "error", err.Error())
		os.Exit(1)
	}

	authenticator, err := auth.NewJWTAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		logger.Error("auth_init_failed", "error", err.Error())
		os.Exit(1)
	}

	driverRepo := postgres.NewDriverPostgres(db)
	docRepo := postgres.NewDocumentPostgres(db)
	svc := handlers.Services{
		Drivers:   service.NewDriverService(driverRepo),
		Documents: service.NewDocumentService(objStore, driverRepo, docRepo, time.Duration(cfg.MinIO.PresignExpirySec)*time.Second),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := newApp(server{
		cfg:           cfg,
		logger:        logger,
		registry:      reg,
		authenticator: authenticator,
		services:      svc,
		health:        []handlers.Pinger{db, handlers.PingFunc(objStore.Ping)},
	})
	if err != nil {
		logger.Error("app_init_failed", "error", err.Error())
		os.Exit(1)
	}

	go func() {
		<-ctx.Done()
		logger.Info("server_shutdown", "timeout_ms", shutdownTimeout.Milliseconds())
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("server_shutdown_failed", "error", err.Error())
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("server_starting", "addr", addr, "service", cfg.ServiceName)
	if err := app.Listen(addr); err != nil {
		logger.Error("server_listen_failed", "error", err.Error())
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error("tracing_shutdown_failed", "error", err.Error())
	}
}
