// Package server assembles the gin router of the query service and manages
// the HTTP listener lifecycle.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pharmagpt/pharmagpt/internal/chat"
	"github.com/pharmagpt/pharmagpt/internal/metrics"
)

// NewRouter builds the gin engine with recovery, CORS and request metrics
// middleware, and registers the API routes.
func NewRouter(cfg Config, handler *chat.Handler, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(requestMetrics(m))

	r.GET("/", handler.Root)
	r.POST("/chat", handler.Chat)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	return r
}

// NewServer wraps the router in an http.Server bound to the configured
// address.
func NewServer(cfg Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    cfg.Address,
		Handler: router,
	}
}

// requestMetrics records a count and duration per handled request.
func requestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.ObserveRequest(endpoint, c.Writer.Status(), time.Since(start).Seconds())
	}
}
