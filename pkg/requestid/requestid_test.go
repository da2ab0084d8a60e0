package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/campuskit/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("reuses valid client-supplied id", func(t *testing.T) {
		t.Parallel()

		var got string
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = requestid.FromContext(r.Context())
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(requestid.Header, "client-id-123")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-id-123", got)
		assert.Equal(t, "client-id-123", rec.Header().Get(requestid.Header))
	})

	t.Run("generates uuid when header is absent", func(t *testing.T) {
		t.Parallel()

		var got string
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = requestid.FromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		_, err := uuid.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, got, rec.Header().Get(requestid.Header))
	})

	t.Run("replaces invalid client id", func(t *testing.T) {
		t.Parallel()

		var got string
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = requestid.FromContext(r.Context())
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(requestid.Header, "bad id with spaces")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		_, err := uuid.Parse(got)
		require.NoError(t, err)
	})
}
