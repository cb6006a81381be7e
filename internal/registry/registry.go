package registry

import (
	"authform/internal/form"
	"errors"
	"sync"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown, closed, evicted or foreign form instances, and for
// any lookup without an owner.
var ErrNotFound = errors.New("form instance not found")

// Instance is one mounted form.
type Instance struct {
	ID         uuid.UUID
	Owner      string
	Controller *form.Controller

	lastSeen time.Time
}

// Registry holds the mounted form instances of all browsers.
type Registry struct {
	auth        form.Authenticator
	idleTimeout time.Duration
	now         func() time.Time

	mu        sync.Mutex
	instances map[uuid.UUID]*Instance
}

func New(auth form.Authenticator, idleTimeout time.Duration) *Registry {
	return &Registry{
		auth:        auth,
		idleTimeout: idleTimeout,
		now:         time.Now,
		instances:   make(map[uuid.UUID]*Instance),
	}
}

// Mount creates a fresh form instance owned by owner.
func (r *Registry) Mount(owner string) *Instance {
	inst := &Instance{
		ID:         uuid.New(),
		Owner:      owner,
		Controller: form.NewController(r.auth),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inst.lastSeen = r.now()
	r.instances[inst.ID] = inst
	fiberlog.Debug("mounted form ", inst.ID)
	return inst
}

// Get returns the instance if it exists and belongs to owner.
func (r *Registry) Get(id uuid.UUID, owner string) (*Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, ok := r.instances[id]
	if !ok || owner == "" || inst.Owner != owner {
		return nil, ErrNotFound
	}
	inst.lastSeen = r.now()
	return inst, nil
}

// Close destroys the instance. A call still in flight resolves into the detached
// controller and is dropped with it.
func (r *Registry) Close(id uuid.UUID, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, ok := r.instances[id]
	if !ok || owner == "" || inst.Owner != owner {
		return ErrNotFound
	}
	delete(r.instances, id)
	fiberlog.Debug("closed form ", id)
	return nil
}

// Sweep evicts instances that have not been touched for longer than the idle timeout and
// returns how many were evicted.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idleTimeout)
	evicted := 0
	for id, inst := range r.instances {
		if inst.lastSeen.Before(cutoff) {
			delete(r.instances, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of mounted instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}

// Run sweeps every interval until stop is closed.
func (r *Registry) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				fiberlog.Infof("evicted %d idle forms", n)
			}
		case <-stop:
			return
		}
	}
}
