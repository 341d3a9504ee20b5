package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-summer/framework/container"
)

// ── stub providers ────────────────────────────────────────────────────────────

type eagerProvider struct {
	container.BaseProvider
	registerCalls int
	bootCalled    bool
}

func (p *eagerProvider) Register(reg *container.Registry) {
	p.registerCalls++
	container.Bind(reg, container.Singleton, newA)
}

func (p *eagerProvider) Boot(res *container.Resolver) error {
	p.bootCalled = true
	_, err := container.Resolve[IA](res)
	return err
}

// multiProvider registers several capabilities.
type multiProvider struct {
	container.BaseProvider
}

func (p *multiProvider) Register(reg *container.Registry) {
	container.Bind1(reg, container.Transient, newB)
	container.Bind(reg, container.Transient, newC1)
	container.Bind(reg, container.Transient, newC2)
}

var errBoot = errors.New("boot failed")

type failingProvider struct {
	container.BaseProvider
}

func (p *failingProvider) Register(*container.Registry) {}
func (p *failingProvider) Boot(*container.Resolver) error {
	return errBoot
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestProviders_RegisterCalledImmediately(t *testing.T) {
	providers := container.NewProviderRegistry(container.NewRegistry())

	p := &eagerProvider{}
	require.NoError(t, providers.Register(p))

	assert.Equal(t, 1, p.registerCalls)
	assert.False(t, p.bootCalled, "Boot() should NOT be called before Boot()")
}

func TestProviders_BootCallsEveryProvider(t *testing.T) {
	reg := container.NewRegistry()
	providers := container.NewProviderRegistry(reg)

	p := &eagerProvider{}
	require.NoError(t, providers.Register(p))

	res, err := providers.Boot()
	require.NoError(t, err)

	assert.True(t, p.bootCalled)
	assert.True(t, providers.Booted())
	assert.True(t, reg.Sealed())
	assert.Same(t, res, providers.Resolver())
	assert.True(t, res.Resolved(container.CapabilityOf[IA]()), "Boot resolved IA")
}

func TestProviders_BootIsIdempotent(t *testing.T) {
	providers := container.NewProviderRegistry(container.NewRegistry())
	require.NoError(t, providers.Register(&eagerProvider{}))

	first, err := providers.Boot()
	require.NoError(t, err)
	second, err := providers.Boot()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestProviders_BootedFalseBeforeBoot(t *testing.T) {
	providers := container.NewProviderRegistry(container.NewRegistry())
	assert.False(t, providers.Booted())
	assert.Nil(t, providers.Resolver())
}

func TestProviders_DuplicateRegisterIgnored(t *testing.T) {
	reg := container.NewRegistry()
	providers := container.NewProviderRegistry(reg)

	p := &eagerProvider{}
	require.NoError(t, providers.Register(p))
	require.NoError(t, providers.Register(p))

	assert.Equal(t, 1, p.registerCalls)
	assert.Len(t, providers.Providers(), 1)
	assert.Len(t, reg.Lookup(container.CapabilityOf[IA]()), 1)
}

func TestProviders_MultipleProviders_AllServicesResolvable(t *testing.T) {
	providers := container.NewProviderRegistry(container.NewRegistry())
	require.NoError(t, providers.Register(&multiProvider{}))
	require.NoError(t, providers.Register(&eagerProvider{}))

	res, err := providers.Boot()
	require.NoError(t, err)

	b, err := container.Resolve[IB](res)
	require.NoError(t, err)
	assert.Same(t, container.MustResolve[IA](res), b.A())

	cs, err := container.ResolveAll[IC[IA]](res)
	require.NoError(t, err)
	assert.Len(t, cs, 2)
}

func TestProviders_RegisterAfterBoot_Fails(t *testing.T) {
	providers := container.NewProviderRegistry(container.NewRegistry())
	_, err := providers.Boot()
	require.NoError(t, err)

	p := &eagerProvider{}
	err = providers.Register(p)

	require.ErrorIs(t, err, container.ErrProvidersBooted)
	assert.Zero(t, p.registerCalls)
}

func TestProviders_BootErrorStopsBoot(t *testing.T) {
	providers := container.NewProviderRegistry(container.NewRegistry())
	late := &eagerProvider{}
	require.NoError(t, providers.Register(&failingProvider{}))
	require.NoError(t, providers.Register(late))

	_, err := providers.Boot()

	require.ErrorIs(t, err, errBoot)
	assert.Contains(t, err.Error(), "failingProvider")
	assert.False(t, late.bootCalled)
}

func TestProviders_BootErrorIsSticky(t *testing.T) {
	providers := container.NewProviderRegistry(container.NewRegistry())
	late := &eagerProvider{}
	require.NoError(t, providers.Register(&failingProvider{}))
	require.NoError(t, providers.Register(late))

	res1, err1 := providers.Boot()
	require.ErrorIs(t, err1, errBoot)

	res2, err2 := providers.Boot()
	require.ErrorIs(t, err2, errBoot)
	assert.Same(t, res1, res2)
	assert.False(t, late.bootCalled, "a failed boot is not retried")
}

func TestProviders_BootPassesOptions(t *testing.T) {
	var resolved int
	providers := container.NewProviderRegistry(container.NewRegistry())
	require.NoError(t, providers.Register(&eagerProvider{}))

	_, err := providers.Boot(container.WithAfterResolving(func(container.Capability, any) { resolved++ }))
	require.NoError(t, err)

	assert.Equal(t, 1, resolved)
}

// ── BaseProvider defaults ─────────────────────────────────────────────────────

func TestBaseProvider_Defaults(t *testing.T) {
	var p container.BaseProvider
	assert.NoError(t, p.Boot(nil))
}
