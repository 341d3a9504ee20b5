package container

import "fmt"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related bindings.
//
// Register is called while the registry is still open, in the order
// providers are added. Boot is called after ALL providers have registered and
// the registry has been sealed, making it safe to resolve anything there.
//
//	type MailServiceProvider struct{ container.BaseProvider }
//
//	func (p *MailServiceProvider) Register(reg *container.Registry) {
//	    container.Bind1(reg, container.Singleton, func(cfg *config.Config) Mailer {
//	        return smtp.New(cfg.Mail)
//	    })
//	}
//
//	func (p *MailServiceProvider) Boot(res *container.Resolver) error {
//	    _, err := container.Resolve[Mailer](res) // fail fast on a bad graph
//	    return err
//	}
type ServiceProvider interface {
	// Register adds bindings. Do NOT resolve here; there is no resolver yet.
	Register(reg *Registry)

	// Boot runs once the resolver exists. A non-nil error aborts boot.
	Boot(res *Resolver) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with a no-op Boot.
//
//	type MyProvider struct{ container.BaseProvider }
//	func (p *MyProvider) Register(reg *container.Registry) { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Resolver) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry collects providers, lets them register into one Registry,
// then seals it into a Resolver and boots them in order.
type ProviderRegistry struct {
	registry   *Registry
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	resolver   *Resolver
	booted     bool
	bootErr    error
}

// NewProviderRegistry creates a provider registry that registers into reg.
func NewProviderRegistry(reg *Registry) *ProviderRegistry {
	return &ProviderRegistry{
		registry:   reg,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register method. Adding the same
// provider twice is a no-op. After Boot the registry is sealed and Register
// returns ErrProvidersBooted.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.booted {
		return fmt.Errorf("%w: cannot register %T", ErrProvidersBooted, provider)
	}
	if r.registered[provider] {
		return nil
	}
	r.registered[provider] = true

	provider.Register(r.registry)
	r.providers = append(r.providers, provider)
	return nil
}

// Boot seals the registry, builds the Resolver and calls Boot on every
// provider in registration order. The first provider error stops the boot and
// is returned wrapped with the provider's type. Calling Boot again returns
// the same resolver and the same error; a failed boot is never retried.
func (r *ProviderRegistry) Boot(opts ...Option) (*Resolver, error) {
	if r.booted {
		return r.resolver, r.bootErr
	}
	r.booted = true
	r.resolver = NewResolver(r.registry, opts...)

	for _, provider := range r.providers {
		if err := provider.Boot(r.resolver); err != nil {
			r.bootErr = fmt.Errorf("booting %T: %w", provider, err)
			break
		}
	}
	return r.resolver, r.bootErr
}

// Booted returns true once Boot has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Resolver returns the resolver built by Boot, or nil before Boot.
func (r *ProviderRegistry) Resolver() *Resolver { return r.resolver }

// Providers returns the registered providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
