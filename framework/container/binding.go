package container

import (
	"sync"
	"sync/atomic"
)

// ── Recipe ────────────────────────────────────────────────────────────────────

// Recipe describes how to build one concrete value.
//
// Deps lists, in order, the capabilities the constructor needs. Build receives
// exactly len(Deps) values, resolved from the same container in the same
// order, and returns the new instance.
//
// Most code never writes a Recipe by hand; Bind, Bind1 … Bind4 derive it from
// a typed factory.
type Recipe struct {
	Deps  []Capability
	Build func(args []any) any
}

// ── Binding ───────────────────────────────────────────────────────────────────

// Binding is one registered capability → concrete mapping.
type Binding struct {
	capability Capability
	lifecycle  Lifecycle
	recipe     Recipe
	index      int

	// singleton slot; mu is held across construction
	mu       sync.Mutex
	built    atomic.Bool
	instance any

	// set once the dependency graph below this binding is known to be acyclic
	acyclic atomic.Bool
}

// Capability returns the capability the binding was registered under.
func (b *Binding) Capability() Capability { return b.capability }

// Lifecycle returns the binding's lifecycle.
func (b *Binding) Lifecycle() Lifecycle { return b.lifecycle }

// Index returns the binding's position among the bindings of its capability,
// starting at 0. Resolve always uses index 0.
func (b *Binding) Index() int { return b.index }

// Dependencies returns a copy of the recipe's dependency list.
func (b *Binding) Dependencies() []Capability {
	out := make([]Capability, len(b.recipe.Deps))
	copy(out, b.recipe.Deps)
	return out
}

// Built reports whether a singleton binding has its instance cached.
// Always false for transient bindings.
func (b *Binding) Built() bool { return b.built.Load() }

// cached returns the singleton instance if it has been built.
func (b *Binding) cached() (any, bool) {
	if b.lifecycle != Singleton || !b.built.Load() {
		return nil, false
	}
	return b.instance, true
}

// store publishes a singleton instance; caller holds b.mu.
func (b *Binding) store(instance any) {
	b.instance = instance
	b.built.Store(true)
}
