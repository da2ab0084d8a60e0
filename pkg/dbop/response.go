package dbop

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorResponse is the JSON shape surfaced to callers of the data layer.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Kind    Kind   `json:"kind"`
}

// WriteError renders err as a JSON error response with the status selected by
// its kind. Unclassified errors and KindUnknown are reported as an opaque
// internal error; their detail belongs in logs, not responses.
func WriteError(w http.ResponseWriter, err error) {
	kind := KindUnknown
	message := "internal error"

	var opErr *Error
	if errors.As(err, &opErr) {
		kind = opErr.Kind
		if kind != KindUnknown {
			message = opErr.Message
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(kind.HTTPStatus())
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   message,
		Kind:    kind,
	})
}
