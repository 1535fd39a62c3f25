// Package ctxutil stores request-scoped identity and tracing values on a
// context.Context, mirroring them onto an embedded *gin.Context when present.
//
//	ctx = ctxutil.SetUserID(ctx, "user-123")
//	ctx = ctxutil.SetUserPermissions(ctx, []string{"users.email"})
//
//	if ctxutil.HasPermission(ctx, "users.email") {
//	    // show the column
//	}
//
// Table elements read these values from Request.Context() in their
// authorization callbacks.
package ctxutil
