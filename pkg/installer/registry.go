package installer

import (
	"fmt"
	"sort"
	"sync"

	"rig/internal/executor"
)

// Registry holds the known ecosystem adapters and provides unified
// access by name and availability.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Default returns a registry with every built-in adapter registered,
// sharing the given executor.
func Default(exec *executor.Executor) *Registry {
	r := NewRegistry()
	for _, a := range []Adapter{
		NewBrew(),
		NewCask(),
		NewNpm(),
		NewPipx(),
		NewGem(),
		NewGoBin(),
		NewVSCode(),
	} {
		if exec != nil {
			if withExec, ok := a.(interface{ SetExecutor(*executor.Executor) }); ok {
				withExec.SetExecutor(exec)
			}
		}
		r.Register(a)
	}
	return r
}

// Register adds an adapter to the registry. Registration order is
// preserved; it defines the order ecosystems run in.
func (r *Registry) Register(a Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.adapters[a.Name()]; !exists {
		r.order = append(r.order, a.Name())
	}
	r.adapters[a.Name()] = a
}

// Get returns the adapter registered under name.
func (r *Registry) Get(name string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("unknown ecosystem: %s", name)
	}
	return a, nil
}

// All returns every registered adapter in registration order.
func (r *Registry) All() []Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapters := make([]Adapter, 0, len(r.order))
	for _, name := range r.order {
		adapters = append(adapters, r.adapters[name])
	}
	return adapters
}

// Available returns the adapters whose underlying tool is installed.
func (r *Registry) Available() []Adapter {
	var available []Adapter
	for _, a := range r.All() {
		if a.IsAvailable() {
			available = append(available, a)
		}
	}
	return available
}

// Names returns the registered ecosystem names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	names = append(names, r.order...)
	sort.Strings(names)
	return names
}
