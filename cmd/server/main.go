package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"approvaldash/internal/approval/store"
	"approvaldash/internal/dashboard"
	dashmetrics "approvaldash/internal/dashboard/metrics"
	jwttoken "approvaldash/internal/jwt_token"
	"approvaldash/internal/platform/config"
	"approvaldash/internal/platform/httpserver"
	"approvaldash/internal/platform/logger"
	httpmetrics "approvaldash/internal/platform/metrics"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Analytics live in internal/dashboard.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, _ := cfg.Log.SlogLevel()
	log := logger.New(level)
	loc, _ := cfg.Dashboard.Location()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	approvals, closeStore, err := store.Connect(ctx, cfg.Database.URL, cfg.Database.Migrate, time.Now(), log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error("failed to close approval store", "error", err)
		}
	}()

	service, err := dashboard.NewFromStore(approvals,
		dashboard.WithLogger(log),
		dashboard.WithMetrics(dashmetrics.New(prometheus.DefaultRegisterer)),
		dashboard.WithLocation(loc),
		dashboard.WithDenseHeatmap(cfg.Dashboard.DenseHeatmap),
	)
	if err != nil {
		return fmt.Errorf("build dashboard service: %w", err)
	}

	jwtService := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer)
	router := newRouter(routerDeps{
		service:        service,
		validator:      jwttoken.NewJWTServiceAdapter(jwtService),
		httpMetrics:    httpmetrics.New(prometheus.DefaultRegisterer),
		gatherer:       prometheus.DefaultGatherer,
		logger:         log,
		requestTimeout: cfg.Server.RequestTimeout.Std(),
	})

	log.Info("starting approvaldash",
		slog.String("addr", cfg.Server.Addr),
		slog.String("timezone", loc.String()),
		slog.Bool("postgres", cfg.Database.URL != ""),
	)
	return httpserver.Run(ctx, httpserver.New(cfg.Server.Addr, router), log, shutdownTimeout)
}
