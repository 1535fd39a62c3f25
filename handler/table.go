package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/tablekit/ecode"
	"github.com/ncobase/tablekit/logging/logger"
	"github.com/ncobase/tablekit/metrics"
	"github.com/ncobase/tablekit/net/resp"
	"github.com/ncobase/tablekit/table"
)

// TableHandler renders registered tables.
type TableHandler struct {
	registry *table.Registry
	logger   *logger.Logger
}

// NewTableHandler creates a new table handler.
func NewTableHandler(registry *table.Registry, logger *logger.Logger) *TableHandler {
	return &TableHandler{
		registry: registry,
		logger:   logger,
	}
}

// List handles listing the registered table keys.
// @Summary List tables
// @Tags tables
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/tables [get]
func (h *TableHandler) List(c *gin.Context) {
	resp.Success(c.Writer, map[string]any{"tables": h.registry.Keys()})
}

// Render handles rendering one table for the query parameters.
// @Summary Render a table
// @Tags tables
// @Produce json
// @Param key path string true "Table key"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/tables/{key} [get]
func (h *TableHandler) Render(c *gin.Context) {
	ctx := c.Request.Context()
	key := c.Param("key")

	tbl, err := h.registry.Get(key)
	if err != nil {
		resp.Fail(c.Writer, resp.New(ecode.TableNotFound, ecode.NotExist("table "+key)))
		return
	}

	done := metrics.InstrumentRender(tbl.Key())
	env, err := tbl.Render(table.FromHTTP(c.Request))
	if err != nil {
		exc := renderException(err)
		if exc.Code == ecode.FilterErr {
			done(metrics.StatusFilterError)
			h.logger.Warnf(ctx, "render table %s: %v", key, err)
		} else {
			done(metrics.StatusError)
			h.logger.Errorf(ctx, "render table %s: %v", key, err)
		}
		resp.Fail(c.Writer, exc)
		return
	}

	elapsed := done(metrics.StatusOK)
	metrics.RecordRows(tbl.Key(), len(env.Items))
	h.logger.Debugf(ctx, "table %s rendered in %s", key, elapsed)

	resp.Success(c.Writer, env)
}

// renderException maps a render error to its response.
func renderException(err error) *resp.Exception {
	var fe *table.FilterError
	switch {
	case errors.As(err, &fe):
		return resp.New(ecode.FilterErr, fe.Error(), map[string]string{
			"filter": fe.Filter,
			"case":   fe.Case,
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return resp.New(ecode.Deadline, "")
	default:
		return resp.New(ecode.ServerErr, "")
	}
}
