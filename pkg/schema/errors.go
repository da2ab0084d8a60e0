package schema

import "errors"

var (
	// ErrBindFailed wraps the underlying failure when the catalog could not be
	// registered on a tenant connection.
	ErrBindFailed = errors.New("schema: failed to bind catalog")
)
