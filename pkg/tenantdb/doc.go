// Package tenantdb manages per-tenant MongoDB connections for multi-tenant
// applications where each tenant's data lives in a separate logical database.
//
// The package has two halves. The Registry is a process-wide, concurrency-safe
// cache of tenant connections: the first request for a tenant opens a physical
// connection, every concurrent request for the same tenant awaits that single
// in-flight creation, and subsequent requests reuse the cached handle without
// I/O. The factory half (NewMongoFactory) knows how to open one connection
// from a URI template with pool-size and timeout settings.
//
// The Registry is generic over the handle type so the concurrency behavior can
// be tested without a running database; production code instantiates it with
// *mongo.Client.
//
// # Usage
//
//	cfg := tenantdb.Config{URITemplate: "mongodb://localhost:27017/{tenant}"}
//	registry := tenantdb.NewRegistry(
//		tenantdb.NewMongoFactory(cfg),
//		tenantdb.WithConnectTimeout[*mongo.Client](cfg.ConnectTimeout),
//		tenantdb.WithCloseFunc[*mongo.Client](tenantdb.CloseMongo),
//	)
//	defer registry.CloseAll(context.Background())
//
//	conn, err := registry.Acquire(ctx, "acme")
//	if err != nil {
//		// surface as service-unavailable; a later request may retry
//	}
//	db := conn.Handle().Database(cfg.DatabaseFor("acme"))
//
// # Failure semantics
//
// A failed creation removes the registry entry, so a later Acquire starts a
// fresh attempt. Acquire itself never retries; that decision belongs to the
// caller. Connect-level retrying (fixed-interval attempts within the connect
// timeout) lives inside the factory.
//
// # Diagnostics
//
// Snapshot exposes the registry's contents without side effects, and
// DiagnosticsHandler serves it as JSON for an operations endpoint.
package tenantdb
