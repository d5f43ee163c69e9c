package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"latenight/database"
	"latenight/internal/config"
	"latenight/internal/http-api/handler"
	"latenight/internal/http-api/router"
	"latenight/internal/logging"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// 2. Setup structured logging
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// 3. Connect to the database
	db, err := database.Open(cfg, logger)
	if err != nil {
		logger.Error("database_open_failed", "error", err.Error())
		os.Exit(1)
	}
	defer database.Close(db)

	// 4. Setup Gin
	ping := handler.PingerFunc(func(ctx context.Context) error { return database.Ping(ctx, db) })
	engine := router.New(cfg, logger, router.NewServices(db, ping, logger))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: engine,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("server_starting", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("received_shutdown_signal", "signal", sig.String())
	case err := <-errChan:
		logger.Error("server_error", "error", err.Error())
		database.Close(db)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_failed", "error", err.Error())
		return
	}
	logger.Info("server_stopped_gracefully")
}
