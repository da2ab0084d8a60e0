package tenantdb_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/campuskit/pkg/tenantdb"
)

func TestDiagnosticsHandler(t *testing.T) {
	t.Parallel()

	t.Run("empty registry", func(t *testing.T) {
		t.Parallel()

		r := tenantdb.NewRegistry(func(ctx context.Context, tenantID string) (*fakeHandle, error) {
			return &fakeHandle{tenantID: tenantID}, nil
		})

		rec := httptest.NewRecorder()
		tenantdb.DiagnosticsHandler(r)(rec, httptest.NewRequest("GET", "/status/connections", nil))

		require.Equal(t, 200, rec.Code)

		var body struct {
			Success     bool                         `json:"success"`
			Connections map[string]tenantdb.ConnInfo `json:"connections"`
			Count       int                          `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Empty(t, body.Connections)
		assert.Equal(t, 0, body.Count)
	})

	t.Run("reports acquired tenants", func(t *testing.T) {
		t.Parallel()

		r := tenantdb.NewRegistry(func(ctx context.Context, tenantID string) (*fakeHandle, error) {
			return &fakeHandle{tenantID: tenantID}, nil
		})
		_, err := r.Acquire(context.Background(), "acme")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		tenantdb.DiagnosticsHandler(r)(rec, httptest.NewRequest("GET", "/status/connections", nil))

		require.Equal(t, 200, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

		var body struct {
			Success     bool                         `json:"success"`
			Connections map[string]tenantdb.ConnInfo `json:"connections"`
			Count       int                          `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, 1, body.Count)
		require.Contains(t, body.Connections, "acme")
		assert.Equal(t, tenantdb.StateReady, body.Connections["acme"].State)
		assert.False(t, body.Connections["acme"].CreatedAt.IsZero())
	})
}
