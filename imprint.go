package imprint

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/caasmo/imprint/cache/ristretto"
	"github.com/caasmo/imprint/config"
	"github.com/caasmo/imprint/core"
	"github.com/caasmo/imprint/manifest"
	"github.com/caasmo/imprint/router/httprouter"
	"github.com/caasmo/imprint/server"
)

// New wires the runtime: configuration, manifest resolver, content cache,
// router and the header pipeline, returning the app and a ready-to-run
// server. configPath may be empty to run on defaults.
func New(configPath string, opts ...core.Option) (*core.App, *server.Server, error) {
	bootstrapLogger := slog.Default()

	cfg, err := config.Load(configPath, bootstrapLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	configProvider := config.NewProvider(cfg)

	store := manifest.NewStore(filepath.Join(cfg.Assets.DistDir, manifest.Filename), bootstrapLogger)
	resolver := manifest.NewResolver(store)

	allOpts := []core.Option{
		core.WithConfigProvider(configProvider),
		core.WithResolver(resolver),
		core.WithRouter(httprouter.New()),
	}

	// A zero budget disables the content cache; the asset handler then reads
	// from disk on every request.
	if cfg.Cache.ContentCacheMaxBytes > 0 {
		contentCache, err := ristretto.New[string, []byte](cfg.Cache.ContentCacheMaxBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create content cache: %w", err)
		}
		allOpts = append(allOpts, core.WithContentCache(contentCache))
	}
	allOpts = append(allOpts, opts...)

	app, err := core.NewApp(allOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	route(cfg, app)

	srv := server.NewServer(configProvider, app.Router(), app.Logger())
	return app, srv, nil
}
