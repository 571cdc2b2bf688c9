package middleware

import (
	"context"

	"github.com/immogest/immogest-backend/pkg/db/models"
)

type contextKey string

const (
	ctxUser      contextKey = "current_user"
	ctxSessionID contextKey = "session_id"
)

// UserFromContext returns the authenticated user seeded by Auth.
func UserFromContext(ctx context.Context) *models.User {
	if ctx == nil {
		return nil
	}
	if u, ok := ctx.Value(ctxUser).(*models.User); ok {
		return u
	}
	return nil
}

// SessionIDFromContext returns the access token's jti seeded by Auth.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// WithUser injects the authenticated user, used by Auth and by tests.
func WithUser(ctx context.Context, user *models.User) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUser, user)
}

// WithSessionID injects the session id, used by Auth and by tests.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionID, sessionID)
}
