package dbop

import (
	"errors"
	"net/http"
)

// Kind classifies a failed database operation. Nothing above the data layer
// should need to inspect driver-specific error shapes; handlers branch on the
// kind alone.
type Kind string

const (
	// KindConnectionUnavailable means a tenant connection could not be opened
	// or reused. The whole request may be retried later.
	KindConnectionUnavailable Kind = "connection_unavailable"

	// KindOperationTimeout means a database call did not settle within budget.
	// The outcome is unknown: the call was not cancelled at the driver level
	// and may still apply after the timeout was reported.
	KindOperationTimeout Kind = "operation_timeout"

	// KindValidation means the document failed schema constraints.
	KindValidation Kind = "validation_error"

	// KindDuplicateKey means a uniqueness constraint was violated.
	KindDuplicateKey Kind = "duplicate_key"

	// KindMalformedID means an identifier was not a valid document key.
	KindMalformedID Kind = "malformed_id"

	// KindDriver means the connection itself reported an error, as opposed to
	// the operation being rejected by the server.
	KindDriver Kind = "driver_error"

	// KindUnknown covers everything not classified above. Full detail is for
	// logs only and must never reach the caller.
	KindUnknown Kind = "unknown"
)

// HTTPStatus maps the kind to the transport status surfaced to callers.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindConnectionUnavailable, KindDriver:
		return http.StatusServiceUnavailable
	case KindOperationTimeout:
		return http.StatusGatewayTimeout
	case KindValidation, KindDuplicateKey, KindMalformedID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified database operation failure. It preserves the original
// error for logs via Unwrap while exposing a stable kind and message.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// NewError builds a classified error around cause. The message defaults to the
// cause's text.
func NewError(kind Kind, cause error) *Error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Kind: kind, Message: msg, cause: cause}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// KindOf extracts the kind from a classified error, or KindUnknown for
// anything else. KindOf(nil) returns the empty kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var opErr *Error
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindUnknown
}
