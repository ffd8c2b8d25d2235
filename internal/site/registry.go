package site

import (
	"sort"

	"github.com/rotisserie/eris"
)

// Registry maps site keys to their adapters. It is populated once at
// startup and read-only afterwards.
type Registry struct {
	sites map[string]Site
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sites: make(map[string]Site)}
}

// Register adds a site to the registry. Duplicate keys are rejected: two
// adapters for one key would make run output depend on load order.
func (r *Registry) Register(s Site) error {
	key := s.Key()
	if _, ok := r.sites[key]; ok {
		return eris.Errorf("site: duplicate key %q", key)
	}
	r.sites[key] = s
	return nil
}

// Get returns a site by key.
func (r *Registry) Get(key string) (Site, error) {
	s, ok := r.sites[key]
	if !ok {
		return nil, eris.Errorf("site: unknown key %q", key)
	}
	return s, nil
}

// All returns every registered site sorted by key, so run order is
// reproducible regardless of registration order.
func (r *Registry) All() []Site {
	out := make([]Site, 0, len(r.sites))
	for _, key := range r.Keys() {
		out = append(out, r.sites[key])
	}
	return out
}

// Keys returns all registered keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.sites))
	for key := range r.sites {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered sites.
func (r *Registry) Len() int { return len(r.sites) }
