// Package sandbox is an in-memory stand-in for the gateway backend. It
// serves the subset of routes the CLI dashboards read, with the same auth
// and response shapes.
package sandbox

import (
	"fmt"
	"net/http"
	"time"

	"github.com/devdhirendra/enhanced-ns-sub000/internal/middleware"
	"github.com/devdhirendra/enhanced-ns-sub000/internal/rate_limiter"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/auditlog"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const Version = "1.0.0"

type Options struct {
	JWTSecret   string
	TokenTTL    time.Duration
	LoginLimit  int
	LoginWindow time.Duration
	Logger      *zap.Logger

	// RequestTimeout bounds each request context; zero leaves it unbounded.
	RequestTimeout time.Duration

	// Registry receives the sandbox metrics; a fresh one is used when nil.
	Registry *prometheus.Registry
}

type Server struct {
	Engine   *gin.Engine
	Store    *Store
	Issuer   *security.Issuer
	Health   *middleware.Health
	AuditLog *auditlog.Auditlog
	limiter  *rate_limiter.RateLimiter
}

func New(store *Store, opts Options) (*Server, error) {
	issuer, err := security.NewIssuer(opts.JWTSecret, opts.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sandbox issuer: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if opts.LoginLimit <= 0 {
		opts.LoginLimit = 10
	}
	if opts.LoginWindow <= 0 {
		opts.LoginWindow = 5 * time.Minute
	}

	s := &Server{
		Store:    store,
		Issuer:   issuer,
		Health:   middleware.NewHealth(Version),
		AuditLog: auditlog.NewAuditLog(500, logger),
		limiter:  rate_limiter.NewRateLimiter(opts.LoginLimit, opts.LoginWindow),
	}

	metrics := newServerMetrics(registry)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.RequestLogger(logger))
	if opts.RequestTimeout > 0 {
		router.Use(middleware.TimeoutMiddleware(opts.RequestTimeout))
	}
	router.Use(metrics.instrument())

	router.GET("/health", s.Health.Handler())
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	security.NewLoginHandler(store, issuer, s.limiter, logger).RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(issuer.JWTMiddleware())
	(&UserHandler{store: store}).RegisterRoutes(protected)
	(&StockHandler{store: store, auditLog: s.AuditLog}).RegisterRoutes(protected)
	(&WorkflowHandler{store: store}).RegisterRoutes(protected)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	s.Engine = router
	return s, nil
}

// Close releases the login limiter.
func (s *Server) Close() {
	s.limiter.Close()
}
