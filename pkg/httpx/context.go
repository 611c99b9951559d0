package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated subject (user id) injected by
// AuthnMiddleware.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromCtx returns the authenticated user id, or "" when the request
// did not pass through AuthnMiddleware.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
