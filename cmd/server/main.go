package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"parcelsort/internal/classifier"
	classifierhandler "parcelsort/internal/classifier/handler"
	classifiermetrics "parcelsort/internal/classifier/metrics"
	"parcelsort/internal/platform/config"
	"parcelsort/internal/platform/httpserver"
	"parcelsort/internal/platform/logger"
	"parcelsort/internal/platform/metrics"
	httptransport "parcelsort/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/classifier.
func main() {
	cfg := config.FromEnv()
	log := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		Service:     config.ServiceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	var (
		httpMetrics       *metrics.Metrics
		classifierMetrics *classifiermetrics.Metrics
	)
	if cfg.MetricsEnabled {
		httpMetrics = metrics.New()
		classifierMetrics = classifiermetrics.New()
	}

	svc := classifier.NewService(log, classifierMetrics)
	router := httptransport.NewRouter(httptransport.RouterDeps{
		Logger:   log,
		Metrics:  httpMetrics,
		Info:     httptransport.Info{Name: config.ServiceName, Version: cfg.Version},
		Handlers: []httptransport.Registrar{classifierhandler.New(svc, log)},
	})
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting parcelsort server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
