package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beliemun/uber-backend/cmd"
	"github.com/beliemun/uber-backend/internal/adapters/out/memory"
	"github.com/beliemun/uber-backend/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(configs, mustStorage(configs), logger)
	if err != nil {
		log.Fatalf("compose application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}

	startWebServer(ctx, app, configs.HTTPPort, logger)

	jobManager.StopAll()
	logger.Info("Stopped")
}

// getConfigs loads .env when present; variables already set in the
// environment take precedence.
func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func mustStorage(configs cmd.Config) cmd.Storage {
	if configs.StorageDriver == cmd.StorageDriverMemory {
		return cmd.NewMemoryStorage(memory.NewStore())
	}

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	if err := postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	return cmd.NewPostgresStorage(gormDB)
}

// startWebServer serves until ctx is done. The event bus is closed before
// the server shuts down so open subscription streams end and do not hold
// the shutdown.
func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateEcho(ctx)
	if err != nil {
		log.Fatalf("build http server: %v", err)
	}

	go func() {
		logger.Info("Listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	app.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
}
