package webspark

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

	"github.com/go-barry/webspark/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHandler loads the template and builds the demo handler for cfg.
func NewHandler(cfg core.Config) (*core.DemoHandler, error) {
	tmpl, err := core.LoadTemplate(cfg.TemplatePath)
	if err != nil {
		return nil, err
	}

	return &core.DemoHandler{
		Dispatcher: core.NewPoolDispatcher(cfg.Workers),
		Renderer:   &core.Renderer{Template: tmpl, Minify: cfg.Minify},
		Seeds:      cfg.SeedList(),
	}, nil
}

// NewLoop wires the relay client, handler and loop. A template that cannot
// be loaded is an error here; nothing is retried.
func NewLoop(cfg core.Config) (*core.Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}

	client := core.NewRelayClient(cfg.RelayAddr, &http.Client{Timeout: cfg.RequestTimeout})
	return core.NewLoop(cfg, client, handler), nil
}

var Start = func(ctx context.Context, cfg core.Config) error {
	core.InitLogger(cfg.LogLevel, cfg.LogFormat)

	loop, err := NewLoop(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		srv := startMetrics(cfg.MetricsAddr)
		defer stopMetrics(srv, 5*time.Second)
	}

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		slog.Info("WebSpark provider stopped", "service", cfg.ServiceName)
		return nil
	}
	return err
}

func startMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		slog.Info("Metrics endpoint active", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics endpoint failed", "err", err)
		}
	}()
	return srv
}

func stopMetrics(srv *http.Server, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("Metrics endpoint shutdown failed", "err", err)
	}
}
