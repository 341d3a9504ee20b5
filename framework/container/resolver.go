package container

import (
	"fmt"

	"go.uber.org/zap"
)

// ── Resolver ──────────────────────────────────────────────────────────────────

// Resolver builds instances from a sealed Registry, satisfying each
// binding's dependencies recursively from the same registry.
//
// A Resolver is safe for concurrent use. Concurrent first resolutions of the
// same singleton binding build exactly one instance; everyone gets that one.
type Resolver struct {
	registry       *Registry
	logger         *zap.Logger
	afterResolving []func(Capability, any)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger logs every resolution at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithAfterResolving registers a callback fired after every successful
// instantiation, cached singletons included.
//
//	res := container.NewResolver(reg, container.WithAfterResolving(func(c container.Capability, v any) {
//	    metrics.Inc(c.String())
//	}))
func WithAfterResolving(fn func(capability Capability, instance any)) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.afterResolving = append(r.afterResolving, fn)
		}
	}
}

// NewResolver seals reg and returns a Resolver that owns it. Singleton
// instances live on the registry's bindings, so a registry can back only one
// Resolver; a second NewResolver on the same registry panics.
func NewResolver(reg *Registry, opts ...Option) *Resolver {
	if reg == nil {
		panic("container: NewResolver called with a nil registry")
	}
	if !reg.claim() {
		panic("container: registry already owned by a resolver")
	}
	r := &Resolver{
		registry: reg,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the (sealed) registry the resolver was built from.
func (r *Resolver) Registry() *Registry { return r.registry }

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve returns an instance of the first binding registered for capability.
// Later bindings for the same capability are only reachable via ResolveAll.
func (r *Resolver) Resolve(capability Capability) (any, error) {
	b, ok := r.registry.first(capability)
	if !ok {
		return nil, r.unregistered(capability)
	}
	return r.instantiate(b)
}

// ResolveAll returns one instance per binding registered for capability, in
// registration order. Each binding honours its own lifecycle. If any binding
// fails, no instances are returned.
func (r *Resolver) ResolveAll(capability Capability) ([]any, error) {
	bindings := r.registry.Lookup(capability)
	if len(bindings) == 0 {
		return nil, r.unregistered(capability)
	}
	out := make([]any, 0, len(bindings))
	for _, b := range bindings {
		inst, err := r.instantiate(b)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}

// Resolved reports whether any singleton binding for capability has built
// its instance.
func (r *Resolver) Resolved(capability Capability) bool {
	for _, b := range r.registry.Lookup(capability) {
		if b.Built() {
			return true
		}
	}
	return false
}

func (r *Resolver) unregistered(capability Capability) error {
	err := fmt.Errorf("%w for [%s]", ErrUnregisteredCapability, capability)
	r.logger.Debug("resolution failed", zap.Stringer("capability", capability), zap.Error(err))
	return err
}

// instantiate honours the binding's lifecycle and builds if needed.
func (r *Resolver) instantiate(b *Binding) (any, error) {
	if inst, ok := b.cached(); ok {
		r.fireResolved(b, inst, true)
		return inst, nil
	}
	if err := r.checkAcyclic(b); err != nil {
		r.logger.Debug("resolution failed", zap.Stringer("capability", b.capability), zap.Error(err))
		return nil, err
	}

	if b.lifecycle == Transient {
		inst, err := r.construct(b)
		if err != nil {
			return nil, err
		}
		r.fireResolved(b, inst, false)
		return inst, nil
	}

	inst, cached, err := r.buildSingleton(b)
	if err != nil {
		return nil, err
	}
	r.fireResolved(b, inst, cached)
	return inst, nil
}

// buildSingleton constructs b under its lock unless another caller got there
// first. Nothing is stored when construction fails.
func (r *Resolver) buildSingleton(b *Binding) (any, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if inst, ok := b.cached(); ok {
		return inst, true, nil
	}
	inst, err := r.construct(b)
	if err != nil {
		return nil, false, err
	}
	b.store(inst)
	return inst, false, nil
}

// construct resolves every dependency with Resolve (first binding wins) and
// calls the recipe. A dependency error is returned as is. Values that do not
// fit their dependency capability (only possible through the untyped
// Register) are rejected here, so typed recipes never see them.
func (r *Resolver) construct(b *Binding) (any, error) {
	args := make([]any, len(b.recipe.Deps))
	for i, dep := range b.recipe.Deps {
		v, err := r.Resolve(dep)
		if err != nil {
			return nil, err
		}
		if !dep.admits(v) {
			return nil, fmt.Errorf("%w: [%s] resolved to %T", ErrTypeMismatch, dep, v)
		}
		args[i] = v
	}
	return b.recipe.Build(args), nil
}

func (r *Resolver) fireResolved(b *Binding, instance any, cached bool) {
	if ce := r.logger.Check(zap.DebugLevel, "resolved"); ce != nil {
		ce.Write(
			zap.Stringer("capability", b.capability),
			zap.Stringer("lifecycle", b.lifecycle),
			zap.Int("index", b.index),
			zap.Bool("cached", cached),
		)
	}
	for _, fn := range r.afterResolving {
		fn(b.capability, instance)
	}
}
