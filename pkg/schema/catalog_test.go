package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/campuskit/campuskit/pkg/schema"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	catalog := schema.Catalog()

	t.Run("contains the full model set", func(t *testing.T) {
		t.Parallel()

		names := make([]string, 0, len(catalog))
		for _, def := range catalog {
			names = append(names, def.Name)
		}
		assert.ElementsMatch(t, []string{
			schema.ModelCourse,
			schema.ModelModule,
			schema.ModelAssignment,
			schema.ModelQuiz,
			schema.ModelUser,
			schema.ModelEnrollment,
			schema.ModelSubmission,
		}, names)
	})

	t.Run("names and collections are unique", func(t *testing.T) {
		t.Parallel()

		names := make(map[string]bool)
		collections := make(map[string]bool)
		for _, def := range catalog {
			assert.False(t, names[def.Name], "duplicate model name %s", def.Name)
			assert.False(t, collections[def.Collection], "duplicate collection %s", def.Collection)
			names[def.Name] = true
			collections[def.Collection] = true
		}
	})

	t.Run("every schema carries a validator", func(t *testing.T) {
		t.Parallel()

		for _, def := range catalog {
			js, ok := def.Validator["$jsonSchema"].(bson.M)
			require.True(t, ok, "model %s has no $jsonSchema", def.Name)
			required, ok := js["required"].([]string)
			require.True(t, ok, "model %s has no required fields", def.Name)
			assert.NotEmpty(t, required, "model %s", def.Name)
		}
	})

	t.Run("uniqueness constraints are indexed", func(t *testing.T) {
		t.Parallel()

		byName := make(map[string]schema.Definition, len(catalog))
		for _, def := range catalog {
			byName[def.Name] = def
		}

		for _, name := range []string{schema.ModelCourse, schema.ModelUser, schema.ModelEnrollment} {
			def := byName[name]
			unique := false
			for _, idx := range def.Indexes {
				if idx.Options == nil {
					continue
				}
				var opts options.IndexOptions
				for _, set := range idx.Options.List() {
					require.NoError(t, set(&opts))
				}
				if opts.Unique != nil && *opts.Unique {
					unique = true
				}
			}
			assert.True(t, unique, "model %s has no unique index", name)
		}
	})
}
