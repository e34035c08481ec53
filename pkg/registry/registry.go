// Package registry manages named action factories, letting pipelines be
// assembled from stage names carried in configuration or request data.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/cambium"
)

// Registry maps stage names to action factories. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]cambium.Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]cambium.Factory),
	}
}

// Register adds a factory under name.
// If a factory with the same name exists, it is overwritten.
func (r *Registry) Register(name string, f cambium.Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Resolve looks up a factory by name.
func (r *Registry) Resolve(name string) (cambium.Factory, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: no factory named %q", name)
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chain builds a pipeline from the initial action and the named stages,
// in order. Resolution happens up front: an unknown name fails before
// anything executes.
func (r *Registry) Chain(exec *cambium.Executor, initial cambium.Action, names ...string) (*cambium.Pipeline, error) {
	p := exec.StartWith(initial)
	for _, name := range names {
		f, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		p = p.Pipe(f)
	}
	return p, nil
}
