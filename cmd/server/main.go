package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campuskit/campuskit/modules/courses"
	"github.com/campuskit/campuskit/pkg/config"
	"github.com/campuskit/campuskit/pkg/httpserver"
	"github.com/campuskit/campuskit/pkg/logger"
	"github.com/campuskit/campuskit/pkg/requestid"
	"github.com/campuskit/campuskit/pkg/schema"
	"github.com/campuskit/campuskit/pkg/session"
	"github.com/campuskit/campuskit/pkg/tenant"
	"github.com/campuskit/campuskit/pkg/tenantdb"
)

func main() {
	var (
		dbCfg      tenantdb.Config
		tenantCfg  tenant.Config
		sessionCfg session.Config
		httpCfg    httpserver.Config
		logCfg     logger.Config
	)
	config.MustLoad(&dbCfg)
	config.MustLoad(&tenantCfg)
	config.MustLoad(&sessionCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&logCfg)

	log := logger.NewFromConfig(logCfg,
		logger.WithAttr(slog.String("service", "campuskit")),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			tenant.LoggerExtractor(),
		),
	)
	slog.SetDefault(log)

	registry := tenantdb.NewRegistry(
		tenantdb.NewMongoFactory(dbCfg),
		tenantdb.WithConnectTimeout[*mongo.Client](dbCfg.ConnectTimeout),
		tenantdb.WithCloseFunc[*mongo.Client](tenantdb.CloseMongo),
	)
	binder := schema.NewBinder(schema.Catalog())
	resolver := tenant.NewResolver(tenantCfg)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	if sessionCfg.Secret != "" {
		r.Use(session.Middleware([]byte(sessionCfg.Secret)))
	}

	r.Get("/status/connections", tenantdb.DiagnosticsHandler(registry))
	r.Get("/health", healthHandler(registry, tenantCfg.Default))

	r.Group(func(api chi.Router) {
		api.Use(tenant.Middleware(resolver, registry, binder, dbCfg, tenant.WithLogger(log)))
		api.Mount("/courses", courses.Router(dbCfg.OperationTimeout))
	})

	srv := httpserver.New(httpCfg, log)
	err := srv.Run(context.Background(), r)

	if closeErr := registry.CloseAll(context.Background()); closeErr != nil {
		log.Error("failed to close tenant connections", slog.Any("error", closeErr))
	}
	if err != nil {
		log.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// healthHandler reports readiness by pinging the default tenant's connection.
func healthHandler(registry *tenantdb.Registry[*mongo.Client], defaultTenant string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := registry.Acquire(r.Context(), defaultTenant)
		if err == nil {
			err = tenantdb.Healthcheck(conn.Handle())(r.Context())
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "database unreachable"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}
}
