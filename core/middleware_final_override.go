package core

import (
	"net/http"
)

// FinalOverride guarantees the single invariant the whole header pipeline
// exists for: the cache directive actually transmitted is the authoritative
// one, no matter what any earlier layer or the handler wrote. It registers a
// deferred action on the response writer rather than setting headers inline,
// so it owns the last write by construction.
//
// Static asset paths get the immutable long-TTL directive unconditionally:
// they are content-addressed, so caching them forever is safe for any user.
// HTML pages get the engine's computed decision re-applied, which keeps
// personalized and development responses out of shared caches. API and
// health paths are excluded.
func (a *App) FinalOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		class := Classify(r.URL.Path)

		if class == ClassApi || class == ClassHealth {
			next.ServeHTTP(w, r)
			return
		}

		hw := &headerWriter{
			ResponseWriter: w,
			beforeWrite: func(h http.Header, status int) {
				a.overrideCacheHeaders(h, r, class)
			},
		}
		next.ServeHTTP(hw, r)
	})
}

func (a *App) overrideCacheHeaders(h http.Header, r *http.Request, class RouteClass) {
	if class == ClassStaticAsset {
		cfg := a.Config()
		if cfg != nil && cfg.IsDev() {
			setHeaderMap(h, headersCacheNoStore)
			h.Set("Vary", varyAcceptEncoding)
			return
		}
		setHeaderMap(h, headersCacheStaticImmutable)
		return
	}

	// HTML page: re-assert whatever the policy engine decides for this
	// request. When the engine deliberately emits no policy (unsafe method,
	// authenticated user) there is nothing authoritative to enforce and the
	// headers are left alone.
	if decision, ok := a.decideCachePolicy(r, class); ok {
		a.applyDecision(h, decision)
	}
}
