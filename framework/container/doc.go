// Package container provides a small, typed IoC (Inversion of Control)
// container and a Service Provider system for Go.
//
// # Overview
//
// The container builds objects on demand. Each binding maps a capability
// (usually an interface type) to a factory plus the ordered list of
// capabilities that factory needs. Resolving a capability builds its
// dependencies first, recursively, from the same container.
//
// Go has no runtime constructor reflection, so auto-wiring is replaced by
// typed factories: the factory's parameter types are the dependency list.
//
// # Container Lifecycle
//
//  1. Create: reg := container.NewRegistry()
//  2. Register bindings (directly or through providers)
//  3. Seal:   res := container.NewResolver(reg)
//  4. Resolve: container.Resolve[T](res)
//
// # Bindings
//
//	// Transient: new instance every Resolve
//	container.Bind(reg, container.Transient, func() Clock { return &systemClock{} })
//
//	// Singleton: created once, reused
//	container.Bind1(reg, container.Singleton, func(c Clock) Cache {
//	    return cache.New(c)
//	})
//
//	// Pre-built value
//	container.Instance[*config.Config](reg, cfg)
//
// # Resolving
//
//	cache, err := container.Resolve[Cache](res)
//
//	// Several implementations registered for one capability
//	notifiers, err := container.ResolveAll[Notifier](res)
//
// Resolve always uses the first binding registered for a capability.
// Dependencies are resolved the same way. ResolveAll returns every binding's
// instance in registration order.
//
// # Errors
//
//	_, err := container.Resolve[Missing](res)
//	errors.Is(err, container.ErrUnregisteredCapability) // true
//
// A dependency cycle fails with ErrCyclicDependency before anything is built.
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(reg *container.Registry) {
//	    container.Bind(reg, container.Singleton, NewMailer)
//	}
//
//	providers := container.NewProviderRegistry(reg)
//	providers.Register(&AppServiceProvider{})
//	res, err := providers.Boot()
package container
