package calendar

import (
	"fmt"
	"sort"
	"sync"
)

// SchedulerExtension is the registry name of the scheduler widget variant
const SchedulerExtension = "scheduler"

// Constructor creates a widget variant with the given entry limit
type Constructor func(entryLimit int) (Widget, error)

// DefaultRegistry is the registry used by builders that were not given one.
// Extensions add themselves to it at startup.
var DefaultRegistry = NewRegistry()

// Registry manages optional widget variants
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry creates a new, empty extension registry
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

// Register adds an extension constructor to the registry
func (r *Registry) Register(name string, c Constructor) error {
	if c == nil {
		return fmt.Errorf("extension %s has no constructor", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[name]; exists {
		return fmt.Errorf("extension %s already registered", name)
	}

	r.constructors[name] = c
	return nil
}

// Unregister removes an extension. Removing an unknown extension is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.constructors, name)
}

// Lookup retrieves an extension constructor by name
func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.constructors[name]
	return c, exists
}

// List returns all registered extension names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
