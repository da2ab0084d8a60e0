package tenant_test

import (
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/campuskit/pkg/session"
	"github.com/campuskit/campuskit/pkg/tenant"
)

func TestHeaderResolver(t *testing.T) {
	t.Parallel()

	t.Run("extracts tenant from header", func(t *testing.T) {
		t.Parallel()

		resolve := tenant.NewHeaderResolver("X-Tenant-ID")
		req := httptest.NewRequest("GET", "/courses", nil)
		req.Header.Set("X-Tenant-ID", "acme")

		id, err := resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "acme", id)
	})

	t.Run("header lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()

		resolve := tenant.NewHeaderResolver("X-Tenant-ID")
		req := httptest.NewRequest("GET", "/courses", nil)
		req.Header.Set("x-tenant-id", "acme")

		id, err := resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "acme", id)
	})

	t.Run("missing header resolves to empty", func(t *testing.T) {
		t.Parallel()

		resolve := tenant.NewHeaderResolver("X-Tenant-ID")
		id, err := resolve(httptest.NewRequest("GET", "/courses", nil))
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("rejects invalid identifier", func(t *testing.T) {
		t.Parallel()

		resolve := tenant.NewHeaderResolver("X-Tenant-ID")
		req := httptest.NewRequest("GET", "/courses", nil)
		req.Header.Set("X-Tenant-ID", "../etc/passwd")

		_, err := resolve(req)
		assert.ErrorIs(t, err, tenant.ErrInvalidIdentifier)
	})
}

func TestClaimResolver(t *testing.T) {
	t.Parallel()

	t.Run("extracts tenant from session claim", func(t *testing.T) {
		t.Parallel()

		resolve := tenant.NewClaimResolver("tid")
		req := httptest.NewRequest("GET", "/courses", nil)
		ctx := session.WithClaims(req.Context(), jwt.MapClaims{"tid": "acme"})

		id, err := resolve(req.WithContext(ctx))
		require.NoError(t, err)
		assert.Equal(t, "acme", id)
	})

	t.Run("unauthenticated request resolves to empty", func(t *testing.T) {
		t.Parallel()

		resolve := tenant.NewClaimResolver("tid")
		id, err := resolve(httptest.NewRequest("GET", "/courses", nil))
		require.NoError(t, err)
		assert.Empty(t, id)
	})
}

func TestResolverPrecedence(t *testing.T) {
	t.Parallel()

	cfg := tenant.Config{Header: "X-Tenant-ID", ClaimKey: "tid", Default: "default"}

	t.Run("session claim wins over header", func(t *testing.T) {
		t.Parallel()

		resolve := tenant.NewResolver(cfg)
		req := httptest.NewRequest("GET", "/courses", nil)
		req.Header.Set("X-Tenant-ID", "globex")
		ctx := session.WithClaims(req.Context(), jwt.MapClaims{"tid": "acme"})

		id, err := resolve(req.WithContext(ctx))
		require.NoError(t, err)
		assert.Equal(t, "acme", id)
	})

	t.Run("header wins over default", func(t *testing.T) {
		t.Parallel()

		resolve := tenant.NewResolver(cfg)
		req := httptest.NewRequest("GET", "/courses", nil)
		req.Header.Set("X-Tenant-ID", "globex")

		id, err := resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "globex", id)
	})

	t.Run("falls back to default tenant", func(t *testing.T) {
		t.Parallel()

		resolve := tenant.NewResolver(cfg)
		id, err := resolve(httptest.NewRequest("GET", "/courses", nil))
		require.NoError(t, err)
		assert.Equal(t, "default", id)
	})

	t.Run("no sources and no default fails", func(t *testing.T) {
		t.Parallel()

		resolve := tenant.NewResolver(tenant.Config{Header: "X-Tenant-ID", ClaimKey: "tid"})
		_, err := resolve(httptest.NewRequest("GET", "/courses", nil))
		assert.ErrorIs(t, err, tenant.ErrNoTenant)
	})
}
