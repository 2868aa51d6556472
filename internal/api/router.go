package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/mianwali/crop-advisory/docs"
	"github.com/mianwali/crop-advisory/internal/api/handler"
	"github.com/mianwali/crop-advisory/internal/api/metrics"
	"github.com/mianwali/crop-advisory/internal/api/middleware"
	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/core/ports"
	"github.com/mianwali/crop-advisory/internal/infrastructure/http/handlers"
)

// RouterConfig carries what the router needs beyond the service.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger

	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc ports.AdvisoryService, cfg RouterConfig) *echo.Echo {
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	if err := metrics.Register(cfg.Registerer); err != nil {
		cfg.Logger.Error().Err(err).Msg("register advisory metrics")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "advisory",
		Registerer: cfg.Registerer,
	}))

	// --- Health, metrics and docs (no auth required) ---
	health := handlers.NewHealthHandler()
	ready := handlers.NewReadinessHandler(svc)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", ready.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: cfg.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Dependencies ---
	authMiddleware := middleware.Auth(cfg.JWTSecret)
	sessionMiddleware := middleware.Session(svc)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	authHandler := handler.NewAuthHandler(svc, middleware.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL))
	cropHandler := handler.NewCropHandler(svc, svc)
	recHandler := handler.NewRecommendationHandler(svc)
	adminHandler := handler.NewAdminHandler(svc, svc)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware, sessionMiddleware)

	// --- Any signed-in role ---
	v1 := e.Group("/v1", authMiddleware, sessionMiddleware)
	v1.GET("/crops", cropHandler.List)
	v1.GET("/regions", cropHandler.Regions)
	v1.POST("/recommendations", recHandler.Recommend)
	v1.GET("/suggestions/soil", recHandler.SoilSuggestions)

	// --- Administrator only ---
	v1.POST("/crops", cropHandler.Create, adminOnly)
	v1.PATCH("/crops/:name", cropHandler.Update, adminOnly)
	v1.DELETE("/crops/:name", cropHandler.Delete, adminOnly)
	v1.GET("/audit", adminHandler.Audit, adminOnly)
	v1.GET("/users", adminHandler.Users, adminOnly)
	v1.GET("/reports", adminHandler.Reports, adminOnly)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
