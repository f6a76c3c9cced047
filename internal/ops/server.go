// Package ops provides the operational listener: Prometheus metrics, a
// liveness probe, process and host status, and the Swagger UI for the admin
// API. It runs on its own address so the admin /api surface stays fixed.
package ops

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/blockproxy/internal/api/middleware"
	"github.com/jroosing/blockproxy/internal/blocking"
	"github.com/jroosing/blockproxy/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/blockproxy/internal/api/docs" // swagger docs
)

// Server is the operational HTTP server.
type Server struct {
	cfg        *config.OpsConfig
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
	startTime  time.Time
	handler    *handler
}

// New builds the ops listener. gatherer backs /metrics; store is reported on /status.
func New(cfg *config.OpsConfig, gatherer prometheus.Gatherer, store blocking.Store, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("ops.New: cfg is nil")
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		engine:    engine,
		startTime: time.Now(),
	}

	h := &handler{store: store, startTime: s.startTime, logger: logger}
	s.handler = h

	engine.GET("/healthz", h.health)
	engine.GET("/status", h.status)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	if cfg.Swagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// AddHealthCheck makes /healthz answer 503 while check returns an error.
// Call it before serving.
func (s *Server) AddHealthCheck(name string, check func() error) {
	s.handler.checks = append(s.handler.checks, healthCheck{name: name, check: check})
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Serve accepts connections on l.
func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}
