package pointer

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a pointer backend.
type Factory func() (Backend, error)

// Registry maps driver names to backend factories.
type Registry struct {
	drivers map[string]Factory
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		drivers: make(map[string]Factory),
	}
}

func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drivers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDriverRegistered, name)
	}

	r.drivers[name] = factory
	return nil
}

// Open creates a backend using the named driver.
func (r *Registry) Open(name string) (Backend, error) {
	r.mu.RLock()
	factory, exists := r.drivers[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, name)
	}

	return factory()
}

// ListDrivers returns the registered driver names in sorted order.
func (r *Registry) ListDrivers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Register adds a factory to the default registry.
func Register(name string, factory Factory) error {
	return defaultRegistry.Register(name, factory)
}

// MustRegister adds a factory to the default registry and panics on error.
func MustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(fmt.Sprintf("failed to register pointer driver %s: %v", name, err))
	}
}

// Open creates a backend from the default registry.
func Open(name string) (Backend, error) {
	return defaultRegistry.Open(name)
}

func ListDrivers() []string {
	return defaultRegistry.ListDrivers()
}
