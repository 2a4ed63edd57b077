package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/xXxDanya2007xXx/speech-coach/pkg/config"
)

// Pinger is anything that can report its own liveness
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	analysisHandler *Analysis
	dependencies    map[string]Pinger
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisHandler *Analysis, dependencies map[string]Pinger) *Router {
	return &Router{
		cfg:             cfg,
		analysisHandler: analysisHandler,
		dependencies:    dependencies,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAnalysisRoutes(v1)
}

// setupAnalysisRoutes configures speech-analysis routes
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	analysisGroup := g.Group("/analyses")

	if rt.analysisHandler != nil {
		analysisGroup.POST("", rt.analysisHandler.Upload)
		analysisGroup.GET("/:id", rt.analysisHandler.GetByID)
	} else {
		analysisGroup.POST("", rt.notImplemented)
		analysisGroup.GET("/:id", rt.notImplemented)
	}
}

// healthCheck reports service status and per-dependency liveness
func (rt *Router) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(rt.dependencies))
	for name, p := range rt.dependencies {
		if p == nil {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			deps[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	body := map[string]interface{}{
		"status":       "ok",
		"environment":  rt.cfg.Server.Environment,
		"dependencies": deps,
	}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	return c.JSON(status, body)
}

func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]string{
		"error": "endpoint not implemented",
	})
}
