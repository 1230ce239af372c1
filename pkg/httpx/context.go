package httpx

import (
	"context"
	"slices"
)

type ctxKey string

const (
	CtxKeyUserID      ctxKey = "user_id"
	CtxKeyOrgID       ctxKey = "org_id"
	CtxKeyRole        ctxKey = "role"
	CtxKeyPermissions ctxKey = "permissions"
)

// Identity is the caller resolved from a verified access token.
type Identity struct {
	UserID      string
	OrgID       string
	Role        string
	Permissions []string
}

// Has reports whether the identity holds the given permission.
func (id Identity) Has(permission string) bool {
	return slices.Contains(id.Permissions, permission)
}

// ContextWithIdentity injects the identity fields for downstream handlers.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, id.UserID)
	ctx = context.WithValue(ctx, CtxKeyOrgID, id.OrgID)
	ctx = context.WithValue(ctx, CtxKeyRole, id.Role)
	ctx = context.WithValue(ctx, CtxKeyPermissions, id.Permissions)
	return ctx
}

// IdentityFromContext returns the caller identity, or ok=false when the
// request never passed through AuthnMiddleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	userID, ok := ctx.Value(CtxKeyUserID).(string)
	if !ok || userID == "" {
		return Identity{}, false
	}

	id := Identity{UserID: userID}
	if v, ok := ctx.Value(CtxKeyOrgID).(string); ok {
		id.OrgID = v
	}
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		id.Role = v
	}
	if v, ok := ctx.Value(CtxKeyPermissions).([]string); ok {
		id.Permissions = v
	}
	return id, true
}

func permissionsFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyPermissions).([]string); ok {
		return v
	}
	return nil
}
