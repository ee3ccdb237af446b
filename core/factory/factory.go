package factory

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs an implementation of T from options of type O.
type Factory[T, O any] func(O) (T, error)

// Registry stores factories keyed by name.
type Registry[T, O any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T, O]
}

// NewRegistry returns an empty factory registry.
func NewRegistry[T, O any]() *Registry[T, O] {
	return &Registry[T, O]{factories: make(map[string]Factory[T, O])}
}

// Register adds a factory for the given name.
func (r *Registry[T, O]) Register(name string, f Factory[T, O]) error {
	if f == nil {
		return fmt.Errorf("factory nil for %s", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("factory already registered for %s", name)
	}
	r.factories[name] = f
	return nil
}

// Create instantiates the implementation registered under name.
func (r *Registry[T, O]) Create(name string, opts O) (T, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown module type %s", name)
	}
	return f(opts)
}

// Has reports whether a factory is registered under name.
func (r *Registry[T, O]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry[T, O]) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
