package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"route-directions/internal/adapters/ors"
	"route-directions/internal/cli"
	"route-directions/internal/config"
	"route-directions/internal/metrics"
	"route-directions/internal/platform/logging"
	"route-directions/internal/platform/obs"
	"route-directions/internal/services"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// main is the CLI composition root: directions [origin] [destination].
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return cli.ExitFailure
	}

	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel, "directions")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		return cli.ExitFailure
	}
	defer func() { _ = logger.Sync() }()

	collector := metrics.NewCollector()

	client, err := ors.NewClient(cfg.APIKey,
		ors.WithBaseURL(cfg.ORSBaseURL),
		ors.WithProfile(cfg.ORSProfile),
		ors.WithTimeout(cfg.ORSTimeout),
		ors.WithLogger(logger),
		ors.WithMetrics(collector),
	)
	if err != nil {
		logger.Error("failed to create ORS client", zap.Error(err))
		return cli.ExitFailure
	}

	planner := services.NewPlanner(client, client, logger)
	planner.Observer = collector

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runID := uuid.NewString()
	ctx = obs.WithRequestID(ctx, runID)
	logger.Debug("starting", zap.String("req_id", runID), zap.String("profile", cfg.ORSProfile))

	code := cli.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, planner, logger)

	if cfg.MetricsTextfile != "" {
		if err := collector.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Warn("metrics dump failed", zap.Error(err))
		}
	}

	return code
}
