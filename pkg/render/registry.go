package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores engines by dialect name, providing discovery and
// duplication safeguards. The pipeline reads it on every render call; writes
// happen during setup only, but the lock keeps late registration safe too.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]Engine
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]Engine),
	}
}

// Register adds an engine by its Name(). Duplicate dialects return an error.
func (r *Registry) Register(engine Engine) error {
	if engine == nil {
		return fmt.Errorf("render: engine is required")
	}
	name := engine.Name()
	if name == "" {
		return fmt.Errorf("render: engine name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[name]; exists {
		return fmt.Errorf("render: engine %q already registered", name)
	}

	r.engines[name] = engine
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(engine Engine) {
	if err := r.Register(engine); err != nil {
		panic(err)
	}
}

// Get retrieves an engine by dialect name.
func (r *Registry) Get(name string) (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engine, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("render: engine %q not found", name)
	}
	return engine, nil
}

// MustGet panics if the engine is missing.
func (r *Registry) MustGet(name string) Engine {
	engine, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return engine
}

// List returns a sorted list of registered dialect names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a dialect is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.engines[name]
	return ok
}
