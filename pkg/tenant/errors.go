package tenant

import "errors"

var (
	// ErrNoTenant is returned when the request is unauthenticated, carries no
	// tenant header, and no default tenant is configured. With a default
	// configured (the normal case) this indicates a startup-configuration
	// fault, not a per-request one.
	ErrNoTenant = errors.New("tenant: no tenant could be resolved")

	// ErrInvalidIdentifier is returned when a supplied tenant identifier does
	// not pass validation.
	ErrInvalidIdentifier = errors.New("tenant: invalid tenant identifier")

	// ErrNoScopeInContext is the panic value of MustFromContext when a handler
	// asks for the request scope before the middleware has attached one.
	ErrNoScopeInContext = errors.New("tenant: no scope in context")
)
