package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/tablekit/ctxutil"
	"github.com/ncobase/tablekit/logging/logger"
	"github.com/ncobase/tablekit/metrics"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Request headers read by the middleware.
const (
	HeaderTraceID         = "X-Trace-ID"
	HeaderUserID          = "X-User-ID"
	HeaderUserRoles       = "X-User-Roles"
	HeaderUserPermissions = "X-User-Permissions"
	HeaderUserIsAdmin     = "X-User-Admin"
)

// Trace attaches a trace id to the request context, reusing the incoming
// X-Trace-ID when present, and echoes it in the response. It also counts
// the response status.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithGinContext(c.Request.Context(), c)
		if id := strings.TrimSpace(c.GetHeader(HeaderTraceID)); id != "" {
			ctx = ctxutil.SetTraceID(ctx, id)
		}
		ctx, traceID := logger.EnsureTraceID(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderTraceID, traceID)

		c.Next()

		metrics.RecordHTTPStatus(c.Writer.Status())
	}
}

// Identity copies the caller identity headers into the request context,
// where column, filter and action authorization read it. The headers are
// taken at face value, so the upstream proxy must authenticate the caller
// and overwrite them.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if uid := strings.TrimSpace(c.GetHeader(HeaderUserID)); uid != "" {
			ctx = ctxutil.SetUserID(ctx, uid)
		}
		if roles := splitHeader(c.GetHeader(HeaderUserRoles)); len(roles) > 0 {
			ctx = ctxutil.SetUserRoles(ctx, roles)
		}
		if perms := splitHeader(c.GetHeader(HeaderUserPermissions)); len(perms) > 0 {
			ctx = ctxutil.SetUserPermissions(ctx, perms)
		}
		if cast.ToBool(c.GetHeader(HeaderUserIsAdmin)) {
			ctx = ctxutil.SetUserIsAdmin(ctx, true)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		l.Infof(c.Request.Context(), "%s %s %d %s %s",
			method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}

func splitHeader(v string) []string {
	parts := lo.Map(strings.Split(v, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Uniq(lo.Compact(parts))
}
