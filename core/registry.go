package core

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type registryEntry struct {
	view  *View
	added time.Time
}

// Registry holds views whose page has been sent but whose browser has not
// attached to the view stream yet. Views left unattached past the TTL are
// unmounted by the sweeper.
type Registry struct {
	ttl   time.Duration
	Debug bool

	mu     sync.Mutex
	views  map[string]registryEntry
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:    ttl,
		views:  make(map[string]registryEntry),
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
}

func (r *Registry) Add(v *View) string {
	id := uuid.NewString()

	r.mu.Lock()
	r.views[id] = registryEntry{view: v, added: r.now()}
	r.mu.Unlock()

	return id
}

// Attach hands the view to its single consumer and forgets it.
func (r *Registry) Attach(id string) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.views[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.views, id)
	return entry.view, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	entry, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()

	if ok {
		entry.view.Unmount()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Sweep unmounts and drops every view added before now minus the TTL.
func (r *Registry) Sweep(now time.Time) int {
	var expired []*View

	r.mu.Lock()
	for id, entry := range r.views {
		if now.Sub(entry.added) >= r.ttl {
			expired = append(expired, entry.view)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, v := range expired {
		v.Unmount()
	}

	if r.Debug && len(expired) > 0 {
		log.Printf("[registry] swept %d unattached views", len(expired))
	}
	return len(expired)
}

func (r *Registry) Start() {
	interval := r.ttl / 2
	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.Sweep(r.now())
			case <-r.stopCh:
				return
			}
		}
	}()
}

// Stop ends the sweeper and unmounts everything still waiting.
func (r *Registry) Stop() {
	r.once.Do(func() { close(r.stopCh) })

	r.mu.Lock()
	views := r.views
	r.views = make(map[string]registryEntry)
	r.mu.Unlock()

	for _, entry := range views {
		entry.view.Unmount()
	}
}
