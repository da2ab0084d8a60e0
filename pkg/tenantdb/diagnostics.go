package tenantdb

import (
	"encoding/json"
	"net/http"
)

// DiagnosticsHandler returns a read-only HTTP handler that reports the
// registry's current contents. The response shape is:
//
//	{"success": true, "connections": {"acme": {"state": "READY", ...}}, "count": 1}
func DiagnosticsHandler[H any](r *Registry[H]) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		snapshot := r.Snapshot()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"connections": snapshot,
			"count":       len(snapshot),
		})
	}
}
