package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/go-summer/framework/config"
	"github.com/km-arc/go-summer/framework/container"
	"github.com/km-arc/go-summer/framework/logging"
	"github.com/km-arc/go-summer/framework/providers"
	"github.com/km-arc/go-summer/framework/routing"
)

const shutdownTimeout = 10 * time.Second

// Application owns the binding registry and the provider registry, and after
// Boot the Resolver built from them. User code registers its own providers
// with app.Register() before Boot, like $app in Laravel's bootstrap/app.php.
type Application struct {
	Registry  *container.Registry
	Providers *container.ProviderRegistry

	config *config.Config
	logger *zap.Logger
}

// New loads configuration from envFiles (default ".env") and creates the
// application.
func New(envFiles ...string) (*Application, error) {
	return NewWithConfig(config.Load(envFiles...))
}

// NewWithConfig creates the application from an already loaded config and
// registers the framework core providers.
func NewWithConfig(cfg *config.Config) (*Application, error) {
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}

	reg := container.NewRegistry()
	a := &Application{
		Registry:  reg,
		Providers: container.NewProviderRegistry(reg),
		config:    cfg,
		logger:    logger,
	}

	for _, p := range []container.ServiceProvider{
		&providers.ConfigServiceProvider{Config: cfg},
		&providers.LoggingServiceProvider{Logger: logger},
		&providers.RoutingServiceProvider{},
	} {
		if err := a.Register(p); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot seals the registry and runs the Boot phase on all providers.
// Calling it again returns the same resolver.
func (a *Application) Boot() (*container.Resolver, error) {
	res, err := a.Providers.Boot(container.WithLogger(a.logger.Named("container")))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Resolver returns the resolver built by Boot, or nil before Boot.
func (a *Application) Resolver() *container.Resolver { return a.Providers.Resolver() }

// Config returns the application configuration.
func (a *Application) Config() *config.Config { return a.config }

// Logger returns the application logger.
func (a *Application) Logger() *zap.Logger { return a.logger }

// Router boots the application if needed and resolves the HTTP router.
func (a *Application) Router() (*routing.Router, error) {
	res, err := a.Boot()
	if err != nil {
		return nil, err
	}
	return container.Resolve[*routing.Router](res)
}

// Handler returns the resolved router as an http.Handler, for tests and for
// embedding into another server.
func (a *Application) Handler() (http.Handler, error) {
	return a.Router()
}

// Run boots the application (if needed) and serves HTTP on APP_PORT until
// ctx is cancelled, then shuts the server down gracefully.
func (a *Application) Run(ctx context.Context) error {
	router, err := a.Router()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              a.config.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening",
			zap.String("addr", srv.Addr),
			zap.Int("bindings", a.Registry.Len()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.config.App.Debug }
