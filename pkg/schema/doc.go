// Package schema holds the fixed catalog of LMS document schemas and the
// Binder that registers them on tenant connections.
//
// Each Definition pairs a model name with its collection, a server-side
// $jsonSchema validator, and the indexes backing its uniqueness constraints.
// The Binder guarantees the catalog is registered at most once per tenant
// connection: document-mapping layers fail loudly on duplicate registration,
// so the guard lives here in one place rather than at every call site.
//
// The returned ModelSet maps model names to connection-scoped collections and
// is what request handlers operate on.
package schema
