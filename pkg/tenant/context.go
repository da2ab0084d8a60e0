package tenant

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campuskit/campuskit/pkg/schema"
)

// Scope is everything a handler needs to run tenant-scoped database
// operations. It is owned by one request's lifetime and never shared
// across requests.
type Scope struct {
	TenantID string
	Client   *mongo.Client
	DB       *mongo.Database
	Models   *schema.ModelSet
}

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithScope attaches the request scope to the context.
func WithScope(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, contextKey{}, scope)
}

// FromContext retrieves the request scope from the context.
func FromContext(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(contextKey{}).(*Scope)
	return scope, ok
}

// MustFromContext retrieves the request scope and panics if absent. Use only
// in handlers mounted behind the Middleware.
func MustFromContext(ctx context.Context) *Scope {
	scope, ok := FromContext(ctx)
	if !ok || scope == nil {
		panic(ErrNoScopeInContext)
	}
	return scope
}

// IDFromContext retrieves just the tenant identifier from the context.
func IDFromContext(ctx context.Context) (string, bool) {
	scope, ok := FromContext(ctx)
	if !ok || scope == nil {
		return "", false
	}
	return scope.TenantID, true
}

// LoggerExtractor returns a ContextExtractor for the logger that injects the
// tenant ID into log attributes.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.String("tenant_id", id), true
		}
		return slog.Attr{}, false
	}
}
