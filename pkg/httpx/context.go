package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated user's id once the auth middleware
// has resolved it. Rate limiting keys off it for per-user limits.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the authenticated user id, or "" if the request
// carried no resolved identity.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// ContextWithUserID attaches a resolved user id to the context.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}
