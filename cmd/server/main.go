package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greenplate/greenplate/internal/api"
	"github.com/greenplate/greenplate/internal/config"
	"github.com/greenplate/greenplate/internal/metrics"
	"github.com/greenplate/greenplate/internal/registry"
	"github.com/greenplate/greenplate/internal/sites"
	"github.com/greenplate/greenplate/internal/ws"
)

const defaultConfigPath = "config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("greenplate-server starting", "config", *configPath)

	cfg, err := config.Load(*configPath)
	switch {
	case err == nil:
	case *configPath == defaultConfigPath && errors.Is(err, os.ErrNotExist):
		// The demo runs fine without a config file.
		slog.Info("no config file found — using defaults", "path", *configPath)
		cfg = config.Default()
	default:
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	slog.Info("config loaded",
		"http_port", cfg.Server.HTTPPort,
		"base_url", cfg.Server.EffectiveBaseURL(),
		"stream_interval", cfg.Server.StreamInterval,
		"sites", len(cfg.SiteList()),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Site directory — the only process-wide state. Swapped wholesale on
	// config reload; everything else is computed per request.
	dir := sites.New(cfg.SiteList())

	m := metrics.New(prometheus.DefaultRegisterer)

	// Reload the site list when the config file changes. Port and base
	// URL changes still require a restart.
	if _, statErr := os.Stat(*configPath); statErr == nil {
		go func() {
			if err := config.Watch(ctx, *configPath, func(next *config.Config) {
				dir.Replace(next.SiteList())
				slog.Info("site directory reloaded", "sites", dir.Count())
			}); err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}

	apiHandler := api.New(dir, m, cfg.Server.EffectiveBaseURL())

	// WebSocket hub — broadcasts the current-period KPI snapshot.
	hub := ws.New(dir, m, cfg.Server.StreamInterval)
	go hub.Run(ctx)

	httpMux := http.NewServeMux()
	httpMux.Handle("/api/", apiHandler)
	httpMux.Handle(registry.PathManifest, apiHandler)
	httpMux.Handle("/ws/stream", hub)
	httpMux.Handle("/metrics", promhttp.Handler())

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: httpMux,
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("greenplate-server shutting down")
	httpSrv.Shutdown(context.Background()) //nolint:errcheck
}
