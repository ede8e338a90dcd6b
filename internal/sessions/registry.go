package sessions

import (
	"sort"
	"sync"
	"time"

	"github.com/smartwork/dashboard/internal/store"
)

type entry struct {
	ws       *store.Workspace
	lastSeen time.Time
}

// Registry holds the live workspaces, keyed by id. New workspaces start from
// the seed function's dataset.
type Registry struct {
	mu         sync.Mutex
	workspaces map[string]*entry
	seed       func() store.Dataset
	now        func() time.Time
}

func NewRegistry(seed func() store.Dataset) *Registry {
	if seed == nil {
		seed = func() store.Dataset { return store.Dataset{} }
	}
	return &Registry{
		workspaces: make(map[string]*entry),
		seed:       seed,
		now:        time.Now,
	}
}

// Get returns the workspace for id, creating it on first use, and marks it as
// recently used.
func (r *Registry) Get(id string) *store.Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.workspaces[id]
	if !ok {
		e = &entry{ws: store.NewWorkspace(id, r.seed())}
		r.workspaces[id] = e
	}
	e.lastSeen = r.now()
	return e.ws
}

// Lookup returns an existing workspace without touching it.
func (r *Registry) Lookup(id string) (*store.Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.workspaces[id]
	if !ok {
		return nil, false
	}
	return e.ws, true
}

// Each calls fn for every live workspace in id order. fn runs outside the
// registry lock.
func (r *Registry) Each(fn func(*store.Workspace)) {
	r.mu.Lock()
	list := make([]*store.Workspace, 0, len(r.workspaces))
	for _, e := range r.workspaces {
		list = append(list, e.ws)
	}
	r.mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	for _, ws := range list {
		fn(ws)
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// Drop forgets a workspace. It reports whether one was removed.
func (r *Registry) Drop(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workspaces[id]; !ok {
		return false
	}
	delete(r.workspaces, id)
	return true
}

// EvictIdle drops workspaces unused for longer than maxIdle and returns their
// ids, sorted.
func (r *Registry) EvictIdle(maxIdle time.Duration) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	var evicted []string
	for id, e := range r.workspaces {
		if e.lastSeen.Before(cutoff) {
			delete(r.workspaces, id)
			evicted = append(evicted, id)
		}
	}
	sort.Strings(evicted)
	return evicted
}

// ExpirePreviews cancels stale import previews in every workspace and returns
// how many were cancelled.
func (r *Registry) ExpirePreviews(maxAge time.Duration) int {
	total := 0
	r.Each(func(ws *store.Workspace) {
		total += ws.ExpirePreviews(maxAge)
	})
	return total
}
