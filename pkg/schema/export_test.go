package schema

import "go.mongodb.org/mongo-driver/v2/mongo"

// Test hooks: the registration path needs a live database, so the binding
// discipline is exercised by seeding bound state directly.

// SeedBound records a set as already bound for the tenant.
func (b *Binder) SeedBound(tenantID string, set *ModelSet) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bound[tenantID] = set
}

// ModelSetFor builds a ModelSet without going through Bind.
func ModelSetFor(tenantID string, models map[string]*mongo.Collection) *ModelSet {
	return &ModelSet{tenantID: tenantID, models: models}
}
