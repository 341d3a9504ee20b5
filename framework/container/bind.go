package container

// ── Typed registration ────────────────────────────────────────────────────────
//
// Bind … Bind4 register a factory whose parameter types are the binding's
// dependencies, in order. The recipe is derived from the type parameters, so
// the declared dependencies and the factory can never disagree.
//
//	type Greeter interface{ Greet(name string) string }
//
//	container.Bind1(reg, container.Transient, func(clock Clock) Greeter {
//	    return &greeter{clock: clock}
//	})

// Bind registers a factory with no dependencies for capability I.
func Bind[I any](reg *Registry, lc Lifecycle, factory func() I) *Binding {
	mustFactory(factory == nil)
	return reg.Register(CapabilityOf[I](), lc, Recipe{
		Build: func([]any) any { return factory() },
	})
}

// Bind1 registers a factory for I that depends on D1.
func Bind1[I, D1 any](reg *Registry, lc Lifecycle, factory func(D1) I) *Binding {
	mustFactory(factory == nil)
	return reg.Register(CapabilityOf[I](), lc, Recipe{
		Deps: []Capability{CapabilityOf[D1]()},
		Build: func(args []any) any {
			return factory(arg[D1](args, 0))
		},
	})
}

// Bind2 registers a factory for I that depends on D1 and D2.
func Bind2[I, D1, D2 any](reg *Registry, lc Lifecycle, factory func(D1, D2) I) *Binding {
	mustFactory(factory == nil)
	return reg.Register(CapabilityOf[I](), lc, Recipe{
		Deps: []Capability{CapabilityOf[D1](), CapabilityOf[D2]()},
		Build: func(args []any) any {
			return factory(arg[D1](args, 0), arg[D2](args, 1))
		},
	})
}

// Bind3 registers a factory for I that depends on D1, D2 and D3.
func Bind3[I, D1, D2, D3 any](reg *Registry, lc Lifecycle, factory func(D1, D2, D3) I) *Binding {
	mustFactory(factory == nil)
	return reg.Register(CapabilityOf[I](), lc, Recipe{
		Deps: []Capability{CapabilityOf[D1](), CapabilityOf[D2](), CapabilityOf[D3]()},
		Build: func(args []any) any {
			return factory(arg[D1](args, 0), arg[D2](args, 1), arg[D3](args, 2))
		},
	})
}

// Bind4 registers a factory for I that depends on D1 through D4.
func Bind4[I, D1, D2, D3, D4 any](reg *Registry, lc Lifecycle, factory func(D1, D2, D3, D4) I) *Binding {
	mustFactory(factory == nil)
	return reg.Register(CapabilityOf[I](), lc, Recipe{
		Deps: []Capability{CapabilityOf[D1](), CapabilityOf[D2](), CapabilityOf[D3](), CapabilityOf[D4]()},
		Build: func(args []any) any {
			return factory(arg[D1](args, 0), arg[D2](args, 1), arg[D3](args, 2), arg[D4](args, 3))
		},
	})
}

// Instance registers a pre-built value as a singleton for I.
//
//	container.Instance[*config.Config](reg, cfg)
func Instance[I any](reg *Registry, value I) *Binding {
	b := reg.Register(CapabilityOf[I](), Singleton, Recipe{
		Build: func([]any) any { return value },
	})
	b.mu.Lock()
	b.store(value)
	b.mu.Unlock()
	b.acyclic.Store(true)
	return b
}

// arg converts a resolved dependency back to its static type. A nil interface
// becomes T's zero value.
func arg[T any](args []any, i int) T {
	if args[i] == nil {
		var zero T
		return zero
	}
	return args[i].(T)
}

func mustFactory(isNil bool) {
	if isNil {
		panic("container: Bind called with a nil factory")
	}
}
