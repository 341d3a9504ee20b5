package container

import (
	"fmt"
	"sync"
)

// ── Registry ──────────────────────────────────────────────────────────────────

// Registry maps each capability to the ordered list of bindings registered
// for it.
//
// A Registry is filled during setup and then handed to NewResolver, which
// seals it. Registering into a sealed registry panics: the binding set is
// fixed for the lifetime of the Resolver.
//
//	reg := container.NewRegistry()
//	container.Bind(reg, container.Singleton, NewConfig)
//	container.Bind1(reg, container.Transient, NewMailer) // func(*Config) Mailer
//	res := container.NewResolver(reg)
type Registry struct {
	mu       sync.RWMutex
	bindings map[Capability][]*Binding
	order    []Capability
	count    int
	sealed   bool
	owned    bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Capability][]*Binding),
	}
}

// Register appends a binding for capability. A capability may be registered
// any number of times; every binding is kept, in order.
func (r *Registry) Register(capability Capability, lifecycle Lifecycle, recipe Recipe) *Binding {
	if capability.IsZero() {
		panic("container: cannot register the zero capability")
	}
	if !lifecycle.valid() {
		panic(fmt.Sprintf("container: [%s] registered with unknown %s", capability, lifecycle))
	}
	if recipe.Build == nil {
		panic(fmt.Sprintf("container: [%s] registered without a Build func", capability))
	}
	for i, dep := range recipe.Deps {
		if dep.IsZero() {
			panic(fmt.Sprintf("container: [%s] dependency %d is the zero capability", capability, i))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		panic(fmt.Sprintf("container: cannot register [%s], registry is sealed", capability))
	}

	existing := r.bindings[capability]
	if len(existing) == 0 {
		r.order = append(r.order, capability)
	}
	b := &Binding{
		capability: capability,
		lifecycle:  lifecycle,
		recipe: Recipe{
			Deps:  append([]Capability(nil), recipe.Deps...),
			Build: recipe.Build,
		},
		index: len(existing),
	}
	r.bindings[capability] = append(existing, b)
	r.count++
	return b
}

// Lookup returns the bindings for capability in registration order, or nil if
// none are registered.
func (r *Registry) Lookup(capability Capability) []*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bs := r.bindings[capability]
	if len(bs) == 0 {
		return nil
	}
	out := make([]*Binding, len(bs))
	copy(out, bs)
	return out
}

// first returns the binding Resolve would use, without copying.
func (r *Registry) first(capability Capability) (*Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bs := r.bindings[capability]
	if len(bs) == 0 {
		return nil, false
	}
	return bs[0], true
}

// Has reports whether at least one binding exists for capability.
func (r *Registry) Has(capability Capability) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings[capability]) > 0
}

// Capabilities returns every registered capability in the order it was first
// registered.
func (r *Registry) Capabilities() []Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Capability, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the total number of bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Seal freezes the registry without handing it to a Resolver. Calling it
// twice is fine; NewResolver seals as well.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// claim seals the registry and marks it owned by a Resolver. It reports false
// if another Resolver already owns it.
func (r *Registry) claim() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owned {
		return false
	}
	r.owned = true
	r.sealed = true
	return true
}

// Sealed reports whether the registry has been sealed.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}
