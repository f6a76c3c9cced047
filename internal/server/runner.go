// Package server wires the admin gateway, its stores and the optional
// operational listener into a running process.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/blockproxy/internal/api"
	"github.com/jroosing/blockproxy/internal/blocking"
	"github.com/jroosing/blockproxy/internal/config"
	"github.com/jroosing/blockproxy/internal/database"
	"github.com/jroosing/blockproxy/internal/metrics"
	"github.com/jroosing/blockproxy/internal/ops"
	"github.com/jroosing/blockproxy/internal/statistics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ShutdownTimeout bounds graceful shutdown of each listener.
const ShutdownTimeout = 5 * time.Second

// Addrs are the bound listener addresses, reported once both are up.
type Addrs struct {
	Gateway string
	Ops     string // empty when the ops listener is disabled
}

// Runner orchestrates gateway startup and shutdown.
type Runner struct {
	logger *slog.Logger
	stats  statistics.Source
	ready  func(Addrs)
}

// NewRunner creates a new runner with the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// SetStatistics injects the statistics source of an embedding proxy.
// If nil, RunWithContext builds an in-memory collector from the config.
func (r *Runner) SetStatistics(src statistics.Source) {
	r.stats = src
}

// OnReady registers fn to be called with the bound addresses once listening.
func (r *Runner) OnReady(fn func(Addrs)) {
	r.ready = fn
}

// Run starts the gateway and blocks until SIGINT/SIGTERM.
func (r *Runner) Run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return r.RunWithContext(ctx, cfg)
}

// RunWithContext starts the gateway (and the ops listener when enabled) and
// blocks until ctx is canceled or a listener fails.
func (r *Runner) RunWithContext(ctx context.Context, cfg *config.Config) error {
	ctx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	store, db, err := r.openStore(cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() { _ = db.Close() }()
	}

	stats := r.stats
	if stats == nil {
		stats = statistics.NewCollector(
			statistics.WithTopN(cfg.Statistics.TopN),
			statistics.WithMaxTracked(cfg.Statistics.MaxTracked),
		)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	gw := api.New(&cfg.Gateway, api.Deps{
		Statistics: stats,
		Blocking:   store,
		AssetRoot:  cfg.Gateway.AssetDir,
		Metrics:    m,
	}, r.logger)

	gwLn, err := net.Listen("tcp", gw.Addr())
	if err != nil {
		return fmt.Errorf("listen gateway: %w", err)
	}

	var opsSrv *ops.Server
	var opsLn net.Listener
	if cfg.Ops.Enabled {
		opsSrv = ops.New(&cfg.Ops, reg, store, r.logger)
		if db != nil {
			opsSrv.AddHealthCheck("database", db.Health)
		}
		if opsLn, err = net.Listen("tcp", opsSrv.Addr()); err != nil {
			_ = gwLn.Close()
			return fmt.Errorf("listen ops: %w", err)
		}
	}

	addrs := Addrs{Gateway: gwLn.Addr().String()}
	if opsLn != nil {
		addrs.Ops = opsLn.Addr().String()
	}
	r.logStartup(cfg, store, addrs, gw.AssetRoot())

	errCh := make(chan error, 2)
	go func() { errCh <- gw.Serve(gwLn) }()
	if opsSrv != nil {
		go func() { errCh <- opsSrv.Serve(opsLn) }()
	}

	if r.ready != nil {
		r.ready(addrs)
	}

	var runErr error
	select {
	case <-ctx.Done():
		// shutdown requested
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := gw.Shutdown(shutdownCtx); err != nil && r.logger != nil {
		r.logger.Warn("gateway shutdown", "err", err)
	}
	if opsSrv != nil {
		if err := opsSrv.Shutdown(shutdownCtx); err != nil && r.logger != nil {
			r.logger.Warn("ops shutdown", "err", err)
		}
	}
	if r.logger != nil {
		r.logger.Info("gateway stopped")
	}
	return runErr
}

// openStore returns the SQLite-backed store when a database path is
// configured and an in-memory store otherwise.
func (r *Runner) openStore(cfg *config.Config) (blocking.Store, *database.DB, error) {
	initial := cfg.InitialBlocking().Enabled()

	if cfg.Database.Path == "" {
		return blocking.NewMemoryStore(initial), nil, nil
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	store, err := database.NewBlockingStore(db, initial, r.logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("load blocking state: %w", err)
	}
	return store, db, nil
}

func (r *Runner) logStartup(cfg *config.Config, store blocking.Store, addrs Addrs, assetRoot string) {
	if r.logger == nil {
		return
	}
	r.logger.Info(
		"gateway listening",
		"addr", addrs.Gateway,
		"assets", assetRoot,
		"blocking", blocking.StateOf(store.Enabled()).String(),
		"database", cfg.Database.Path,
	)
	if addrs.Ops != "" {
		r.logger.Info("ops listening", "addr", addrs.Ops, "swagger", cfg.Ops.Swagger)
	}
}
