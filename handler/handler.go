// Package handler exposes registered tables over HTTP.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/tablekit/logging/logger"
	"github.com/ncobase/tablekit/metrics"
	"github.com/ncobase/tablekit/net/resp"
	"github.com/ncobase/tablekit/table"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Table  *TableHandler
	logger *logger.Logger
}

// NewHandler creates a new handler serving the tables in registry.
func NewHandler(registry *table.Registry, logger *logger.Logger) *Handler {
	return &Handler{
		Table:  NewTableHandler(registry, logger),
		logger: logger,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		resp.Success(c.Writer, map[string]string{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api/v1")
	{
		tables := api.Group("/tables")
		{
			tables.GET("", h.Table.List)
			tables.GET("/:key", h.Table.Render)
		}
	}
}

// NewEngine returns a gin engine with the middleware chain and routes.
// Identity headers are honored only when trustIdentityHeaders is set, which
// requires an authenticating proxy in front of the engine; otherwise every
// request renders as an anonymous caller.
func NewEngine(h *Handler, trustIdentityHeaders bool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(Trace())
	if trustIdentityHeaders {
		r.Use(Identity())
	}
	r.Use(RequestLogger(h.logger))
	h.RegisterRoutes(r)
	return r
}
