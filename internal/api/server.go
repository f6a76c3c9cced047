// Package api provides the admin gateway of blockproxy.
//
// A single gin engine answers the JSON API under /api/ (statistics and the
// blocking switch) and serves the dashboard bundle for every other path.
// Unknown /api/ routes answer a JSON 404; missing assets a plain-text 404.
//
// Security note: the gateway has no authentication. Bind it to a trusted
// interface only.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/blockproxy/internal/api/handlers"
	"github.com/jroosing/blockproxy/internal/api/middleware"
	"github.com/jroosing/blockproxy/internal/blocking"
	"github.com/jroosing/blockproxy/internal/config"
	"github.com/jroosing/blockproxy/internal/metrics"
	"github.com/jroosing/blockproxy/internal/statistics"
)

// Deps are the collaborators the gateway reads and writes.
type Deps struct {
	Statistics statistics.Source
	Blocking   blocking.Store

	// AssetRoot is the dashboard directory. Empty uses DefaultAssetRoot.
	AssetRoot string

	// Metrics is optional.
	Metrics *metrics.Metrics
}

// Server is the admin gateway HTTP server.
type Server struct {
	cfg        *config.GatewayConfig
	logger     *slog.Logger
	engine     *gin.Engine
	assets     *Assets
	httpServer *http.Server
}

// New builds the gateway. It panics on a nil config or missing collaborators,
// which are wiring errors.
func New(cfg *config.GatewayConfig, deps Deps, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}
	if deps.Statistics == nil || deps.Blocking == nil {
		panic("api.New: statistics source and blocking store are required")
	}

	root := deps.AssetRoot
	if root == "" {
		var err error
		if root, err = DefaultAssetRoot(); err != nil {
			root = AssetDirName
			if logger != nil {
				logger.Warn("falling back to relative asset root", "root", root, "err", err)
			}
		}
	}

	engine := gin.New()
	// The routing table is exact: no redirects, no 405s.
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false
	engine.HandleMethodNotAllowed = false

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.SlogRequestLogger(logger))
	engine.Use(middleware.Metrics(deps.Metrics))

	h := handlers.New(deps.Statistics, deps.Blocking, logger)
	h.SetMetrics(deps.Metrics)
	deps.Metrics.ObserveBlocking(deps.Blocking.Enabled())

	assets := NewAssets(root, logger)
	RegisterRoutes(engine, h, assets)

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, assets: assets, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// AssetRoot returns the directory static assets are served from.
func (s *Server) AssetRoot() string {
	return s.assets.Root()
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on l.
func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
