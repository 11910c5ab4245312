package imprint

import (
	"net/http"
	"strings"

	"github.com/caasmo/imprint/config"
	"github.com/caasmo/imprint/core"
	rtr "github.com/caasmo/imprint/router"
)

func route(cfg *config.Config, app *core.App) {
	// The header pipeline, outermost first. FinalOverride wraps everything
	// below it so its deferred action runs last when headers flush;
	// CachePolicy sets headers inline and is therefore the first layer any
	// later one may override.
	headerPipeline := []func(http.Handler) http.Handler{
		app.RequestLog,
		app.FinalOverride,
		app.LegacyHeaderStrip,
		app.CachePolicy,
	}

	assetsPattern := strings.TrimSuffix(cfg.Assets.URLPrefix, "/") + "/*filepath"
	app.Router().Handle(assetsPattern,
		rtr.NewChain(app.AssetsHandler()).WithMiddleware(headerPipeline...).Handler())

	app.Router().Handle("/health",
		rtr.NewChain(http.HandlerFunc(app.HealthHandler)).WithMiddleware(headerPipeline...).Handler())

	app.Router().Handle("/",
		rtr.NewChain(http.HandlerFunc(app.HomeHandler)).WithMiddleware(headerPipeline...).Handler())
}
