package ctxutil

import (
	"context"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ginContextKey   = "gin_context"
	userIDKey       = "user_id"
	TraceIDKey      = "trace_id"
	userRolesKey    = "user_roles"
	userPermissions = "user_permissions"
	userIsAdminKey  = "user_is_admin"
)

// ctxKey keeps our values apart from other packages using plain strings.
type ctxKey string

// FromGinContext extracts the context.Context from *gin.Context.
func FromGinContext(c *gin.Context) context.Context {
	return c.Request.Context()
}

// WithGinContext returns a context.Context that embeds the *gin.Context.
func WithGinContext(ctx context.Context, c *gin.Context) context.Context {
	return context.WithValue(ctx, ctxKey(ginContextKey), c)
}

// GetGinContext extracts *gin.Context from context.Context if it exists.
func GetGinContext(ctx context.Context) (*gin.Context, bool) {
	if c, ok := ctx.Value(ctxKey(ginContextKey)).(*gin.Context); ok {
		return c, ok
	}
	return nil, false
}

// GetValue retrieves a value from the context, preferring the embedded gin.Context.
func GetValue(ctx context.Context, key string) any {
	if c, ok := GetGinContext(ctx); ok {
		if val, exists := c.Get(key); exists {
			return val
		}
	}
	return ctx.Value(ctxKey(key))
}

// SetValue sets a value to the context and to the embedded gin.Context if any.
func SetValue(ctx context.Context, key string, val any) context.Context {
	if c, ok := GetGinContext(ctx); ok {
		c.Set(key, val)
	}
	return context.WithValue(ctx, ctxKey(key), val)
}

// SetUserID sets user id to context.Context.
func SetUserID(ctx context.Context, uid string) context.Context {
	return SetValue(ctx, userIDKey, uid)
}

// GetUserID gets user id from context.Context.
func GetUserID(ctx context.Context) string {
	if uid, ok := GetValue(ctx, userIDKey).(string); ok {
		return uid
	}
	return ""
}

// GetTraceID gets trace id from context.Context or gin.Context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := GetValue(ctx, TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets trace id to context.Context and gin.Context if available.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return SetValue(ctx, TraceIDKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}

// SetUserRoles sets user roles to context.Context.
func SetUserRoles(ctx context.Context, roles []string) context.Context {
	return SetValue(ctx, userRolesKey, roles)
}

// GetUserRoles gets user roles from context.Context.
func GetUserRoles(ctx context.Context) []string {
	if roles, ok := GetValue(ctx, userRolesKey).([]string); ok {
		return roles
	}
	return []string{}
}

// SetUserPermissions sets user permissions to context.Context.
func SetUserPermissions(ctx context.Context, permissions []string) context.Context {
	return SetValue(ctx, userPermissions, permissions)
}

// GetUserPermissions gets user permissions from context.Context.
func GetUserPermissions(ctx context.Context) []string {
	if perms, ok := GetValue(ctx, userPermissions).([]string); ok {
		return perms
	}
	return []string{}
}

// SetUserIsAdmin sets user admin status to context.Context.
func SetUserIsAdmin(ctx context.Context, isAdmin bool) context.Context {
	return SetValue(ctx, userIsAdminKey, isAdmin)
}

// GetUserIsAdmin gets user admin status from context.Context.
func GetUserIsAdmin(ctx context.Context) bool {
	if isAdmin, ok := GetValue(ctx, userIsAdminKey).(bool); ok {
		return isAdmin
	}
	return false
}

// HasRole reports whether the current user holds role. Admins hold every role.
func HasRole(ctx context.Context, role string) bool {
	return GetUserIsAdmin(ctx) || slices.Contains(GetUserRoles(ctx), role)
}

// HasPermission reports whether the current user was granted permission.
// Admins are granted everything.
func HasPermission(ctx context.Context, permission string) bool {
	return GetUserIsAdmin(ctx) || slices.Contains(GetUserPermissions(ctx), permission)
}
