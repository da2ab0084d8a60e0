package tenantdb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuskit/campuskit/pkg/tenantdb"
)

func TestConfigTemplates(t *testing.T) {
	t.Parallel()

	cfg := tenantdb.Config{
		URITemplate:      "mongodb://db.internal:27017/{tenant}?authSource=admin",
		DatabaseTemplate: "campus_{tenant}",
	}

	t.Run("expands uri template", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "mongodb://db.internal:27017/acme?authSource=admin", cfg.URIFor("acme"))
	})

	t.Run("expands database template", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "campus_acme", cfg.DatabaseFor("acme"))
	})

	t.Run("template without placeholder is returned unchanged", func(t *testing.T) {
		t.Parallel()
		shared := tenantdb.Config{URITemplate: "mongodb://db.internal:27017/shared"}
		assert.Equal(t, "mongodb://db.internal:27017/shared", shared.URIFor("acme"))
	})
}
