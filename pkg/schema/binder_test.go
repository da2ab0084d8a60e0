package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campuskit/campuskit/pkg/schema"
)

func TestBinderIdempotency(t *testing.T) {
	t.Parallel()

	t.Run("bound tenant returns the same set without touching the database", func(t *testing.T) {
		t.Parallel()

		b := schema.NewBinder(schema.Catalog())
		set := schema.ModelSetFor("acme", map[string]*mongo.Collection{})
		b.SeedBound("acme", set)

		// nil database: the fast path must not dereference it.
		got, err := b.Bind(context.Background(), "acme", nil)
		require.NoError(t, err)
		assert.Same(t, set, got)
	})

	t.Run("bound and forget", func(t *testing.T) {
		t.Parallel()

		b := schema.NewBinder(schema.Catalog())
		assert.False(t, b.Bound("acme"))

		b.SeedBound("acme", schema.ModelSetFor("acme", nil))
		assert.True(t, b.Bound("acme"))

		b.Forget("acme")
		assert.False(t, b.Bound("acme"))
	})
}

func TestModelSet(t *testing.T) {
	t.Parallel()

	t.Run("model lookup", func(t *testing.T) {
		t.Parallel()

		coll := &mongo.Collection{}
		set := schema.ModelSetFor("acme", map[string]*mongo.Collection{
			schema.ModelCourse: coll,
		})

		assert.Equal(t, "acme", set.TenantID())

		got, ok := set.Model(schema.ModelCourse)
		require.True(t, ok)
		assert.Same(t, coll, got)

		_, ok = set.Model(schema.ModelQuiz)
		assert.False(t, ok)

		assert.Same(t, coll, set.MustModel(schema.ModelCourse))
		assert.Panics(t, func() { set.MustModel("Bogus") })
	})

	t.Run("names are sorted", func(t *testing.T) {
		t.Parallel()

		set := schema.ModelSetFor("acme", map[string]*mongo.Collection{
			schema.ModelUser:   nil,
			schema.ModelCourse: nil,
			schema.ModelQuiz:   nil,
		})
		assert.Equal(t, []string{schema.ModelCourse, schema.ModelQuiz, schema.ModelUser}, set.Names())
	})
}
