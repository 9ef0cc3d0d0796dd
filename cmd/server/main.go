package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"route-directions/internal/adapters/ors"
	"route-directions/internal/api"
	"route-directions/internal/config"
	"route-directions/internal/metrics"
	"route-directions/internal/platform/logging"
	"route-directions/internal/services"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// main is the web front end composition root.
// It wires the ORS client behind the planner and serves the address form.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel, "server")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	collector := metrics.NewCollector()

	client, err := ors.NewClient(cfg.APIKey,
		ors.WithBaseURL(cfg.ORSBaseURL),
		ors.WithProfile(cfg.ORSProfile),
		ors.WithTimeout(cfg.ORSTimeout),
		ors.WithLogger(logger),
		ors.WithMetrics(collector),
	)
	if err != nil {
		logger.Fatal("failed to create ORS client", zap.Error(err))
	}

	planner := services.NewPlanner(client, client, logger)
	planner.Observer = collector

	router := api.NewRouter(planner, logger, collector)

	// Write timeout covers two geocode calls plus one directions call.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      3*cfg.ORSTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}
