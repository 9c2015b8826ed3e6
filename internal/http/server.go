// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/elbonian/internal/config"
	apperrors "github.com/allisson/elbonian/internal/errors"
	"github.com/allisson/elbonian/internal/httputil"
	"github.com/allisson/elbonian/internal/metrics"
	numeralHTTP "github.com/allisson/elbonian/internal/numeral/http"
)

// Server represents the HTTP API server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	ready  atomic.Bool

	stopBackground context.CancelFunc
}

// NewServer creates a new HTTP server bound to host:port.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin router with middleware and all routes.
// metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	cfg *config.Config,
	conversionHandler *numeralHTTP.ConversionHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	router.NoRoute(func(c *gin.Context) {
		httputil.HandleErrorGin(c, apperrors.ErrNotFound, nil)
	})

	v1 := router.Group("/v1")
	conversions := v1.Group("/conversions")
	if cfg.RateLimitEnabled {
		bgCtx, cancel := context.WithCancel(context.Background())
		s.stopBackground = cancel
		conversions.Use(RateLimitMiddleware(bgCtx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	{
		conversions.POST("", conversionHandler.ConvertHandler)
		conversions.GET("/:input", conversionHandler.GetConversionHandler)
		conversions.GET("/:input/blocks", conversionHandler.InspectHandler)
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves HTTP until Shutdown is called. Readiness is reported while ctx is alive.
func (s *Server) Start(ctx context.Context) error {
	if s.server.Handler == nil {
		return errors.New("router not configured")
	}

	s.ready.Store(true)
	stop := context.AfterFunc(ctx, func() { s.ready.Store(false) })
	defer stop()

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.ready.Store(false)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server and its background workers.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.ready.Store(false)
	if s.stopBackground != nil {
		s.stopBackground()
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
