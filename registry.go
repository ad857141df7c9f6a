package logswap

import "sync"

// Registry tracks how many active handles target each canonical path. The
// count is observational: handles never share a sink, so the registry exists
// for introspection, not writer sharing.
type Registry struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{counts: make(map[string]int)}
}

// Register increments the active-handle count for path.
func (r *Registry) Register(path string) {
	r.mu.Lock()
	r.counts[path]++
	r.mu.Unlock()
}

// Release decrements the count for path, floored at zero. The entry is
// removed when it reaches zero; absence and zero are equivalent for queries.
func (r *Registry) Release(path string) {
	r.mu.Lock()
	if n, ok := r.counts[path]; ok {
		if n <= 1 {
			delete(r.counts, path)
		} else {
			r.counts[path] = n - 1
		}
	}
	r.mu.Unlock()
}

// CountFor returns the number of currently active handles targeting path,
// or 0 if the path was never registered.
func (r *Registry) CountFor(path string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[path]
}

// ActivePaths returns a snapshot of all paths with at least one active
// handle. The snapshot may be stale relative to concurrent registration.
func (r *Registry) ActivePaths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths := make([]string, 0, len(r.counts))
	for path := range r.counts {
		paths = append(paths, path)
	}
	return paths
}

// TotalActive returns the total number of active handles across all paths.
func (r *Registry) TotalActive() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, n := range r.counts {
		total += n
	}
	return total
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by Open and the
// package-level factory functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
