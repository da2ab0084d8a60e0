package schema

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// mongo server error code for "collection already exists"
const codeNamespaceExists = 48

// ModelSet is the catalog of compiled models bound to one tenant connection.
// It is immutable after creation and safe for concurrent use.
type ModelSet struct {
	tenantID string
	models   map[string]*mongo.Collection
}

// TenantID returns the tenant this set is bound to.
func (s *ModelSet) TenantID() string { return s.tenantID }

// Model returns the compiled model registered under name.
func (s *ModelSet) Model(name string) (*mongo.Collection, bool) {
	m, ok := s.models[name]
	return m, ok
}

// MustModel returns the compiled model registered under name.
// Panics for names outside the catalog; use it only with the Model* constants.
func (s *ModelSet) MustModel(name string) *mongo.Collection {
	m, ok := s.models[name]
	if !ok {
		panic(fmt.Sprintf("schema: model %q is not in the catalog", name))
	}
	return m
}

// Names returns the sorted model names in the set.
func (s *ModelSet) Names() []string {
	names := make([]string, 0, len(s.models))
	for name := range s.models {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Binder registers the schema catalog on tenant connections, at most once per
// connection. Repeated Bind calls for a tenant return the existing ModelSet
// unchanged, so duplicate registration can never happen regardless of how many
// requests race on a cold tenant.
type Binder struct {
	catalog []Definition

	mu    sync.Mutex
	bound map[string]*ModelSet
}

// NewBinder returns a Binder for the given catalog.
func NewBinder(catalog []Definition) *Binder {
	return &Binder{
		catalog: catalog,
		bound:   make(map[string]*ModelSet),
	}
}

// Bind registers every catalog schema on the tenant's database and returns the
// resulting ModelSet. Idempotent: once a tenant is bound, the same set is
// returned without touching the database. A failed bind stores nothing, so the
// next request retries from scratch.
func (b *Binder) Bind(ctx context.Context, tenantID string, db *mongo.Database) (*ModelSet, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if set, ok := b.bound[tenantID]; ok {
		return set, nil
	}

	models := make(map[string]*mongo.Collection, len(b.catalog))
	for _, def := range b.catalog {
		coll, err := b.register(ctx, db, def)
		if err != nil {
			return nil, errors.Join(ErrBindFailed, fmt.Errorf("schema %s: %w", def.Name, err))
		}
		models[def.Name] = coll
	}

	set := &ModelSet{tenantID: tenantID, models: models}
	b.bound[tenantID] = set
	return set, nil
}

// Bound reports whether the tenant already has a ModelSet.
func (b *Binder) Bound(tenantID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.bound[tenantID]
	return ok
}

// Forget drops the tenant's ModelSet. Called when the owning connection is
// closed; the next request for the tenant binds again.
func (b *Binder) Forget(tenantID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.bound, tenantID)
}

func (b *Binder) register(ctx context.Context, db *mongo.Database, def Definition) (*mongo.Collection, error) {
	err := db.CreateCollection(ctx, def.Collection,
		options.CreateCollection().SetValidator(def.Validator))
	if err != nil && !isNamespaceExists(err) {
		return nil, err
	}

	coll := db.Collection(def.Collection)
	if len(def.Indexes) > 0 {
		// CreateMany is a no-op for indexes that already exist with the same spec.
		if _, err := coll.Indexes().CreateMany(ctx, def.Indexes); err != nil {
			return nil, err
		}
	}
	return coll, nil
}

func isNamespaceExists(err error) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCode(codeNamespaceExists)
}
