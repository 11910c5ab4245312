package core

import (
	"net/http"
)

// CachePolicy computes the cache directive for the request and sets the
// resulting headers before the handler runs. Layers further out (the legacy
// stripper and the final override) may legally rewrite what this sets; the
// override owns the last write.
func (a *App) CachePolicy(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		class := Classify(r.URL.Path)

		if decision, ok := a.decideCachePolicy(r, class); ok {
			a.applyDecision(w.Header(), decision)
		}

		next.ServeHTTP(w, r)
	})
}

func (a *App) applyDecision(h http.Header, d CacheDecision) {
	h.Set("Cache-Control", d.Directive)
	if d.Vary != "" {
		h.Set("Vary", d.Vary)
	}
	if d.Directive == headersCacheNoStore["Cache-Control"] {
		h.Set("Pragma", headersCacheNoStore["Pragma"])
		h.Set("Expires", headersCacheNoStore["Expires"])
	}
}
