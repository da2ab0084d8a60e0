package tenant

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campuskit/campuskit/pkg/dbop"
	"github.com/campuskit/campuskit/pkg/schema"
	"github.com/campuskit/campuskit/pkg/tenantdb"
)

// middleware configuration, set via options.
type config struct {
	logger *slog.Logger
}

// Option configures the middleware.
type Option func(*config)

// WithLogger sets the logger used for injector failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Middleware resolves the request's tenant, fetches or creates its connection,
// binds the schema catalog, and attaches the resulting Scope to the request
// context. Handlers behind it can assume MustFromContext succeeds.
//
// When the connection cannot be acquired the request fails early with a
// service-unavailable response; the handler is never reached.
func Middleware(
	resolve Resolver,
	registry *tenantdb.Registry[*mongo.Client],
	binder *schema.Binder,
	dbcfg tenantdb.Config,
	opts ...Option,
) func(http.Handler) http.Handler {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tenantID, err := resolve(r)
			if err != nil {
				writeResolutionError(w, err)
				return
			}

			conn, err := registry.Acquire(ctx, tenantID)
			if err != nil {
				cfg.logger.ErrorContext(ctx, "tenant connection unavailable",
					slog.String("tenant_id", tenantID), slog.Any("error", err))
				dbop.WriteError(w, dbop.NewError(dbop.KindConnectionUnavailable, err))
				return
			}
			conn.Touch()

			db := conn.Handle().Database(dbcfg.DatabaseFor(tenantID))
			models, err := binder.Bind(ctx, tenantID, db)
			if err != nil {
				cfg.logger.ErrorContext(ctx, "schema bind failed",
					slog.String("tenant_id", tenantID), slog.Any("error", err))
				dbop.WriteError(w, dbop.NewError(dbop.KindConnectionUnavailable, err))
				return
			}

			scope := &Scope{
				TenantID: tenantID,
				Client:   conn.Handle(),
				DB:       db,
				Models:   models,
			}
			next.ServeHTTP(w, r.WithContext(WithScope(ctx, scope)))
		})
	}
}

func writeResolutionError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrInvalidIdentifier) {
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   err.Error(),
		"kind":    "tenant_resolution",
	})
}
