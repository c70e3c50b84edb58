// Package server exposes the analysis engine over an HTTP JSON API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/blackwell-systems/codecommenter/internal/analyzer"
	"github.com/blackwell-systems/codecommenter/internal/config"
	"github.com/blackwell-systems/codecommenter/internal/server/middleware"
	"github.com/blackwell-systems/codecommenter/internal/server/respond"
)

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(a *analyzer.Analyzer, cfg config.Server, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.Recovery(log),
	)

	h := NewHandler(a, cfg.MaxBodyBytes)

	r.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "route not found")
	})

	api := r.Group("/api/v1")
	h.RegisterRoutes(api)
	return r
}
