package feeds

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the named feeds a Runner polls. It is safe for concurrent
// use.
type Registry struct {
	mu       sync.RWMutex
	feeds    map[string]Feed
	statuses map[string]*Status
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		feeds:    make(map[string]Feed),
		statuses: make(map[string]*Status),
	}
}

// Register adds f. Names must be unique.
func (r *Registry) Register(f Feed) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := f.Name()
	if _, exists := r.feeds[name]; exists {
		return fmt.Errorf("feed %q already registered", name)
	}
	r.feeds[name] = f
	r.statuses[name] = &Status{Name: name, Healthy: true}
	return nil
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.feeds))
	for name := range r.feeds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllStatus returns every status sorted by name.
func (r *Registry) AllStatus() []Status {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Status, 0, len(r.statuses))
	for _, s := range r.statuses {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) updateStatus(name string, fn func(s *Status)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.statuses[name]; ok {
		fn(s)
	}
}

func (r *Registry) snapshot() []Feed {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Feed, 0, len(r.feeds))
	for _, f := range r.feeds {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
