package core

import (
	"fmt"
	"net/http"

	"github.com/caasmo/imprint/config"
)

// CacheDecision is the computed cache policy for one request. Derived, never
// persisted; it carries no identity beyond the request it was computed for.
type CacheDecision struct {
	Directive  string
	Vary       string
	TTLSeconds int
}

// Default policy windows, used when configuration is absent or unusable.
const (
	defaultStaticMaxAge = 604800 // 7 days
	defaultStaticSWR    = 86400  // 1 day
	defaultPageMaxAge   = 3600   // 1 hour
	defaultPageSWR      = 300    // 5 minutes
)

const varyAcceptEncoding = "Accept-Encoding"

// decideCachePolicy runs the layered policy evaluation, first match wins.
// The boolean is false when the engine deliberately emits no policy and the
// response passes through with whatever defaults apply.
func (a *App) decideCachePolicy(r *http.Request, class RouteClass) (CacheDecision, bool) {
	// 1. Only safe read methods get cache headers.
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return CacheDecision{}, false
	}

	// 2. API and health responses are never cached by this engine.
	if class == ClassApi || class == ClassHealth {
		return CacheDecision{}, false
	}

	cfg := a.Config()

	// 3. Development disables caching outright, regardless of route class or
	// auth state.
	if cfg != nil && cfg.IsDev() {
		return CacheDecision{
			Directive: headersCacheNoStore["Cache-Control"],
			Vary:      varyAcceptEncoding,
		}, true
	}

	// 4. Personalized content must never land in a shared cache. A failing
	// predicate counts as unauthenticated: the public variant is the safe one
	// to cache.
	if a.authenticated(r) {
		return CacheDecision{}, false
	}

	// 5. / 6. Public content: long window for content-addressed static
	// paths, short revalidatable window for HTML pages.
	maxAge, swr := a.policyWindows(cfg, class)
	return CacheDecision{
		Directive:  fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAge, swr),
		Vary:       varyAcceptEncoding,
		TTLSeconds: maxAge,
	}, true
}

// policyWindows returns (max-age, stale-while-revalidate) in seconds for the
// route class. Any unusable configuration falls back to the page-class
// defaults rather than failing the request.
func (a *App) policyWindows(cfg *config.Config, class RouteClass) (int, int) {
	if cfg == nil {
		return defaultPageMaxAge, defaultPageSWR
	}

	var maxAge, swr int
	if class == ClassStaticAsset {
		maxAge = int(cfg.Cache.StaticMaxAge.Duration.Seconds())
		swr = int(cfg.Cache.StaticSWR.Duration.Seconds())
	} else {
		maxAge = int(cfg.Cache.PageMaxAge.Duration.Seconds())
		swr = int(cfg.Cache.PageSWR.Duration.Seconds())
	}

	if maxAge <= 0 {
		maxAge = int(cfg.Cache.FallbackMaxAge.Duration.Seconds())
		if maxAge <= 0 {
			maxAge = defaultPageMaxAge
		}
	}
	if swr < 0 {
		swr = defaultPageSWR
	}
	return maxAge, swr
}
