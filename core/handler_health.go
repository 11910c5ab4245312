package core

import (
	"net/http"
)

var healthBody = []byte(`{"status":"ok"}`)

// HealthHandler answers liveness probes. Excluded from the cache-policy
// engine and the final override, so it carries no cache headers at all.
func (a *App) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SetHeaders(w, headersJson)
	w.WriteHeader(http.StatusOK)
	w.Write(healthBody)
}
