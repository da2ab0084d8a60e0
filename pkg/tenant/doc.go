// Package tenant resolves which tenant an HTTP request belongs to and injects
// a ready-to-use database scope into the request context.
//
// Resolution follows one documented precedence: an authenticated session claim
// wins, then the tenant header, then the configured default. The body of the
// request is never consulted.
//
// The Middleware is the single place where a request is enriched with its
// tenant's connection and bound models:
//
//	resolver := tenant.NewResolver(tenant.Config{Default: "default"})
//	r.Use(tenant.Middleware(resolver, registry, binder, dbcfg))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		scope := tenant.MustFromContext(r.Context())
//		courses := scope.Models.MustModel(schema.ModelCourse)
//		// ...
//	}
package tenant
