package courses

import (
	"time"

	"github.com/go-chi/chi/v5"
)

// Router mounts the course CRUD surface. opTimeout is the per-call database
// budget, normally the configured operation timeout default.
func Router(opTimeout time.Duration) chi.Router {
	svc := &service{opTimeout: opTimeout}

	r := chi.NewRouter()
	r.Get("/", svc.list)
	r.Post("/", svc.create)
	r.Get("/{courseID}", svc.get)
	r.Delete("/{courseID}", svc.remove)
	return r
}
