package core

import (
	"log/slog"

	"github.com/caasmo/imprint/cache"
	"github.com/caasmo/imprint/config"
	"github.com/caasmo/imprint/manifest"
	"github.com/caasmo/imprint/router"
)

type Option func(*App)

// WithConfigProvider sets the application's configuration provider.
func WithConfigProvider(p *config.Provider) Option {
	return func(a *App) {
		a.configProvider = p
	}
}

// WithLogger sets the logger implementation.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithRouter sets the router implementation.
func WithRouter(r router.Router) Option {
	return func(a *App) {
		a.router = r
	}
}

// WithResolver sets the asset path resolver.
func WithResolver(r *manifest.Resolver) Option {
	return func(a *App) {
		a.resolver = r
	}
}

// WithContentCache sets the in-process asset content cache.
func WithContentCache(c cache.Cache[string, []byte]) Option {
	return func(a *App) {
		a.contentCache = c
	}
}

// WithAuthenticator sets the authentication collaborator. Optional; without
// one every request counts as unauthenticated.
func WithAuthenticator(auth Authenticator) Option {
	return func(a *App) {
		a.authenticator = auth
	}
}
