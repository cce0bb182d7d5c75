package adapters

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownProvider is returned by Get for a name nothing was registered
// under.
var ErrUnknownProvider = errors.New("unknown provider")

// Named is implemented by every catalog adapter.
type Named interface {
	Name() string
}

// Registry maps provider names to catalog implementations of one role
// (source or target). It is safe for concurrent use.
type Registry[P Named] struct {
	mu        sync.RWMutex
	providers map[string]P
}

// NewRegistry creates an empty registry.
func NewRegistry[P Named]() *Registry[P] {
	return &Registry[P]{
		providers: make(map[string]P),
	}
}

// Register adds a provider to the registry, keyed by its Name().
func (r *Registry[P]) Register(provider P) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider.Name()] = provider
}

// Get returns the provider for the given name, or an error if not found.
func (r *Registry[P]) Get(name string) (P, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[name]
	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
	return provider, nil
}

// Available returns the sorted names of all registered providers.
func (r *Registry[P]) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
