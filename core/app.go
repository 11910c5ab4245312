package core

import (
	"fmt"
	"log/slog"

	"github.com/caasmo/imprint/cache"
	"github.com/caasmo/imprint/config"
	"github.com/caasmo/imprint/manifest"
	"github.com/caasmo/imprint/router"
)

// App is the application wide context: configuration, logger, the asset
// resolver and the content cache. All handlers and middleware hang off App as
// methods so they share the same collaborators.
type App struct {
	configProvider *config.Provider
	logger         *slog.Logger
	router         router.Router
	resolver       *manifest.Resolver
	contentCache   cache.Cache[string, []byte]
	authenticator  Authenticator
}

func NewApp(opts ...Option) (*App, error) {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}

	if a.configProvider == nil {
		return nil, fmt.Errorf("config provider is required (use WithConfigProvider)")
	}
	if a.logger == nil {
		return nil, fmt.Errorf("logger is required (use WithLogger)")
	}
	if a.resolver == nil {
		return nil, fmt.Errorf("asset resolver is required (use WithResolver)")
	}

	return a, nil
}

func (a *App) Router() router.Router {
	return a.router
}

func (a *App) SetRouter(r router.Router) {
	a.router = r
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Config returns the current configuration snapshot, or nil when the
// provider itself is broken. Callers in the request path must treat nil as
// "use defaults", never as a reason to fail the request.
func (a *App) Config() *config.Config {
	if a.configProvider == nil {
		return nil
	}
	return a.configProvider.Get()
}

func (a *App) Resolver() *manifest.Resolver {
	return a.resolver
}
