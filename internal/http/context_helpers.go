package httpx

import (
	"context"

	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SetSessionInContext stores the session in the request context.
func SetSessionInContext(ctx context.Context, sess *domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// SessionFromContext retrieves the session from the request context, or
// nil when the request is unauthenticated.
func SessionFromContext(ctx context.Context) *domainauth.Session {
	sess, _ := ctx.Value(sessionContextKey).(*domainauth.Session)
	return sess
}
