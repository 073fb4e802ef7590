package generator

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores generators by Name(). It lets a host offer several payload
// kinds behind one picker while sharing renderers.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Generator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds gen under its Name(). Duplicate names are rejected.
func (r *Registry) Register(gen Generator) error {
	if gen == nil {
		return fmt.Errorf("generator: generator is required")
	}
	name := strings.TrimSpace(gen.Name())
	if name == "" {
		return fmt.Errorf("generator: generator name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.generators[name]; exists {
		return fmt.Errorf("generator: %q already registered", name)
	}
	r.generators[name] = gen
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(gen Generator) {
	if err := r.Register(gen); err != nil {
		panic(err)
	}
}

// Get retrieves a generator by name.
func (r *Registry) Get(name string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gen, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("generator: %q not found", name)
	}
	return gen, nil
}

// List returns the registered names sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.generators[name]
	return ok
}
