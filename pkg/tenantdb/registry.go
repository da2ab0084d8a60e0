package tenantdb

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State describes the lifecycle of one tenant connection entry.
type State string

const (
	StatePending State = "PENDING" // creation in flight
	StateReady   State = "READY"   // handle is usable
	StateFailed  State = "FAILED"  // creation failed, entry is removed
	StateClosed  State = "CLOSED"  // disconnected by CloseAll
)

// OpenFunc opens one physical connection for a tenant. It must be pure
// construction: no schema binding, no caching.
type OpenFunc[H any] func(ctx context.Context, tenantID string) (H, error)

// CloseFunc releases a handle previously returned by an OpenFunc.
type CloseFunc[H any] func(ctx context.Context, handle H) error

// Conn is one live or pending connection for one tenant. All fields are
// guarded by mu except tenantID, createdAt, and done, which are immutable
// after construction.
type Conn[H any] struct {
	tenantID  string
	createdAt time.Time
	done      chan struct{}

	mu         sync.Mutex
	state      State
	handle     H
	err        error
	lastUsedAt time.Time
}

// TenantID returns the tenant identifier this connection belongs to.
func (c *Conn[H]) TenantID() string { return c.tenantID }

// State returns the current lifecycle state.
func (c *Conn[H]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Handle returns the underlying connection handle. Only valid in StateReady.
func (c *Conn[H]) Handle() H {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle
}

// CreatedAt returns the time the entry was created.
func (c *Conn[H]) CreatedAt() time.Time { return c.createdAt }

// LastUsedAt returns the time of the most recent Touch.
func (c *Conn[H]) LastUsedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUsedAt
}

// Touch records that a request used this connection.
func (c *Conn[H]) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastUsedAt = time.Now()
}

func (c *Conn[H]) resolve(handle H, err error) {
	c.mu.Lock()
	switch {
	case c.state == StateClosed:
		// CloseAll already reached this entry; keep the terminal state and
		// surface it to waiters instead of resurrecting the connection.
		if err == nil {
			err = ErrRegistryClosed
		}
		c.err = err
	case err != nil:
		c.state = StateFailed
		c.err = err
	default:
		c.state = StateReady
		c.handle = handle
	}
	c.mu.Unlock()
	close(c.done)
}

func (c *Conn[H]) result() (H, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle, c.err
}

// Registry is the process-wide cache of tenant connections. Get-or-create is
// atomic per tenant: concurrent first requests for one tenant share a single
// in-flight open. Unrelated tenants never block each other beyond the short
// critical section on the map itself.
type Registry[H any] struct {
	open           OpenFunc[H]
	closeHandle    CloseFunc[H]
	connectTimeout time.Duration

	mu     sync.Mutex
	conns  map[string]*Conn[H]
	opens  map[string]int
	closed bool
}

// RegistryOption configures a Registry.
type RegistryOption[H any] func(*Registry[H])

// WithConnectTimeout bounds how long one connection creation may take.
// Zero means no registry-imposed bound (the OpenFunc may still impose one).
func WithConnectTimeout[H any](d time.Duration) RegistryOption[H] {
	return func(r *Registry[H]) { r.connectTimeout = d }
}

// WithCloseFunc sets the function used to release handles on CloseAll.
func WithCloseFunc[H any](fn CloseFunc[H]) RegistryOption[H] {
	return func(r *Registry[H]) { r.closeHandle = fn }
}

// NewRegistry returns an empty registry that opens connections with open.
func NewRegistry[H any](open OpenFunc[H], opts ...RegistryOption[H]) *Registry[H] {
	r := &Registry[H]{
		open:  open,
		conns: make(map[string]*Conn[H]),
		opens: make(map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Acquire returns the tenant's connection, creating it if absent.
//
// A READY entry is returned without I/O. A PENDING entry makes the caller
// await the same in-flight creation that some earlier caller started. When no
// entry exists the caller becomes the creator: it inserts a PENDING entry,
// invokes the OpenFunc, and publishes the outcome to every waiter. Failed
// creations remove the entry so a later Acquire may retry; Acquire itself
// never retries.
func (r *Registry[H]) Acquire(ctx context.Context, tenantID string) (*Conn[H], error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}
	if c, ok := r.conns[tenantID]; ok {
		r.mu.Unlock()
		return r.await(ctx, c)
	}

	c := &Conn[H]{
		tenantID:   tenantID,
		createdAt:  time.Now(),
		lastUsedAt: time.Now(),
		state:      StatePending,
		done:       make(chan struct{}),
	}
	r.conns[tenantID] = c
	r.opens[tenantID]++
	r.mu.Unlock()

	handle, err := r.dial(ctx, tenantID)
	if err != nil {
		// Remove before publishing so no new caller adopts a dead entry.
		r.mu.Lock()
		if cur, ok := r.conns[tenantID]; ok && cur == c {
			delete(r.conns, tenantID)
		}
		r.mu.Unlock()

		if !errors.Is(err, ErrConnectionUnavailable) {
			err = errors.Join(ErrConnectionUnavailable, err)
		}
		c.resolve(handle, err)
		return nil, err
	}

	// Publish under the registry lock. When a CloseAll ran while the dial was
	// in flight, the creator disconnects the fresh handle itself and reports
	// ErrRegistryClosed to every waiter; it must never become READY.
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		if r.closeHandle != nil {
			_ = r.closeHandle(context.WithoutCancel(ctx), handle)
		}
		var zero H
		c.resolve(zero, ErrRegistryClosed)
		return nil, ErrRegistryClosed
	}
	c.resolve(handle, nil)
	r.mu.Unlock()
	return c, nil
}

// dial runs the OpenFunc under the registry's connect timeout. The timeout
// context is detached from the caller's cancellation: the creation is shared
// with concurrent waiters, so one request going away must not abort it.
func (r *Registry[H]) dial(ctx context.Context, tenantID string) (H, error) {
	dialCtx := context.WithoutCancel(ctx)
	if r.connectTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(dialCtx, r.connectTimeout)
		defer cancel()
	}

	handle, err := r.open(dialCtx, tenantID)
	if err != nil && errors.Is(dialCtx.Err(), context.DeadlineExceeded) {
		err = errors.Join(ErrConnectTimeout, err)
	}
	return handle, err
}

func (r *Registry[H]) await(ctx context.Context, c *Conn[H]) (*Conn[H], error) {
	select {
	case <-c.done:
	case <-ctx.Done():
		return nil, errors.Join(ErrConnectionUnavailable, ctx.Err())
	}

	if _, err := c.result(); err != nil {
		return nil, err
	}
	if c.State() == StateClosed {
		return nil, ErrRegistryClosed
	}
	return c, nil
}

// Opens reports how many physical connection creations have been started for
// the tenant over the registry's lifetime. Exposed for diagnostics and tests.
func (r *Registry[H]) Opens(tenantID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opens[tenantID]
}

// Len returns the number of entries currently in the registry.
func (r *Registry[H]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// ConnInfo is a point-in-time view of one registry entry.
type ConnInfo struct {
	State      State     `json:"state"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
	Opens      int       `json:"opens"`
}

// Snapshot returns a read-only copy of the registry's current contents.
func (r *Registry[H]) Snapshot() map[string]ConnInfo {
	r.mu.Lock()
	conns := make(map[string]*Conn[H], len(r.conns))
	opens := make(map[string]int, len(r.opens))
	for id, c := range r.conns {
		conns[id] = c
		opens[id] = r.opens[id]
	}
	r.mu.Unlock()

	out := make(map[string]ConnInfo, len(conns))
	for id, c := range conns {
		c.mu.Lock()
		out[id] = ConnInfo{
			State:      c.state,
			CreatedAt:  c.createdAt,
			LastUsedAt: c.lastUsedAt,
			Opens:      opens[id],
		}
		c.mu.Unlock()
	}
	return out
}

// CloseAll disconnects every READY handle and marks the registry closed.
// Subsequent Acquire calls fail with ErrRegistryClosed. Creations still in
// flight observe the closed registry when they finish and disconnect their
// own handle.
func (r *Registry[H]) CloseAll(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	conns := r.conns
	r.conns = make(map[string]*Conn[H])
	r.mu.Unlock()

	var errs []error
	for _, c := range conns {
		c.mu.Lock()
		wasReady := c.state == StateReady
		handle := c.handle
		c.state = StateClosed
		c.mu.Unlock()

		if wasReady && r.closeHandle != nil {
			if err := r.closeHandle(ctx, handle); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
