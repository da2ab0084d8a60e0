package tenantdb

import "errors"

var (
	// ErrConnectionUnavailable is returned when a tenant connection could not
	// be opened or reused. Callers should surface it as service-unavailable
	// and may retry the whole request later.
	ErrConnectionUnavailable = errors.New("tenantdb: connection unavailable")

	// ErrConnectTimeout is returned when a connection attempt exceeded the
	// configured connect timeout.
	ErrConnectTimeout = errors.New("tenantdb: connect timeout exceeded")

	// ErrRegistryClosed is returned by Acquire after CloseAll has been called.
	ErrRegistryClosed = errors.New("tenantdb: registry is closed")

	// ErrHealthcheckFailed wraps ping failures reported by Healthcheck.
	ErrHealthcheckFailed = errors.New("tenantdb: healthcheck failed")
)
