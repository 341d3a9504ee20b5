package app

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-summer/framework/config"
	"github.com/km-arc/go-summer/framework/container"
	"github.com/km-arc/go-summer/framework/routing"
)

// AppServiceProvider binds the demo services and mounts their routes.
//
// Bound capabilities:
//   - IDSource        (singleton)
//   - Counter         (singleton)
//   - *Greeter        (transient, depends on *config.Config, IDSource, Counter)
//   - *MemoryNotifier (singleton)
//   - Notifier        (transient, LogNotifier over *zap.Logger)
//   - Notifier        (transient, the shared *MemoryNotifier)
type AppServiceProvider struct{}

func (p *AppServiceProvider) Register(reg *container.Registry) {
	container.Bind(reg, container.Singleton, NewIDSource)
	container.Bind(reg, container.Singleton, NewCounter)
	container.Bind3(reg, container.Transient, func(cfg *config.Config, ids IDSource, counter Counter) *Greeter {
		return NewGreeter(cfg.App.Name, ids, counter)
	})

	container.Bind(reg, container.Singleton, NewMemoryNotifier)
	container.Bind1(reg, container.Transient, func(logger *zap.Logger) Notifier {
		return NewLogNotifier(logger.Named("notify"))
	})
	container.Bind1(reg, container.Transient, func(m *MemoryNotifier) Notifier { return m })
}

// Boot mounts the demo routes on the container's router.
func (p *AppServiceProvider) Boot(res *container.Resolver) error {
	router, err := container.Resolve[*routing.Router](res)
	if err != nil {
		return err
	}
	cfg, err := container.Resolve[*config.Config](res)
	if err != nil {
		return err
	}

	c := &Controller{res: res, cfg: cfg}
	router.Get("/", c.Home)
	router.Get("/greet/{name}", c.Greet)
	router.Get("/notify/{message}", c.Notify)
	router.Get("/container", c.Container)
	return nil
}
