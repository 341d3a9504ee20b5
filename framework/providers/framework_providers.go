package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-summer/framework/config"
	"github.com/km-arc/go-summer/framework/container"
	"github.com/km-arc/go-summer/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider binds the already-loaded configuration.
//
// Bound capabilities:
//   - *config.Config (instance)
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(reg *container.Registry) {
	container.Instance(reg, p.Config)
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider binds the application logger.
//
// Bound capabilities:
//   - *zap.Logger (instance)
type LoggingServiceProvider struct {
	container.BaseProvider
	Logger *zap.Logger
}

func (p *LoggingServiceProvider) Register(reg *container.Registry) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	container.Instance(reg, logger)
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound capabilities:
//   - *routing.Router (singleton, depends on *zap.Logger)
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(reg *container.Registry) {
	container.Bind1(reg, container.Singleton, func(logger *zap.Logger) *routing.Router {
		return routing.New(logger.Named("http"))
	})
}
