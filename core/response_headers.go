package core

import (
	"net/http"
)

// headersCacheNoStore disables caching entirely. Used in development so a
// browser never serves yesterday's stylesheet, and re-asserted by the final
// override for any development response. Pragma and Expires are the
// HTTP/1.0 equivalents of no-store.
var headersCacheNoStore = map[string]string{
	"Cache-Control": "no-cache, no-store, must-revalidate",
	"Pragma":        "no-cache",
	"Expires":       "0",
}

// headersCacheStaticImmutable is the authoritative directive for
// fingerprinted static assets. Their URL changes whenever their content
// does, so the content behind one URL never changes:
// - public: any cache (browser, CDN, proxy) may store it.
// - max-age=31536000: fresh for a year.
// - immutable: the browser will not revalidate, even on a user refresh.
//   Cache busting is handled entirely by the fingerprinted filename.
var headersCacheStaticImmutable = map[string]string{
	"Cache-Control": "public, max-age=31536000, immutable",
	"Vary":          "Accept-Encoding",
}

// headersJson is the baseline for API/health JSON responses.
var headersJson = map[string]string{
	"Content-Type":           "application/json; charset=utf-8",
	"X-Content-Type-Options": "nosniff",
}

// legacyHeaders convey no enforcement value on HTML responses in any modern
// browser and are removed before transmission:
// - X-DNS-Prefetch-Control: prefetch hinting, not a security control.
// - X-Permitted-Cross-Domain-Policies: Flash/PDF cross-domain policy, dead
//   platform.
// - X-XSS-Protection: the built-in XSS auditor it steered was removed from
//   every major browser; CSP replaced it.
var legacyHeaders = []string{
	"X-DNS-Prefetch-Control",
	"X-Permitted-Cross-Domain-Policies",
	"X-XSS-Protection",
}

// SetHeaders applies one or more sets of headers to the response writer.
// Headers from later maps overwrite headers from earlier maps if keys
// conflict.
func SetHeaders(w http.ResponseWriter, headers ...map[string]string) {
	for _, headerMap := range headers {
		for key, value := range headerMap {
			w.Header().Set(key, value)
		}
	}
}

func setHeaderMap(h http.Header, headers map[string]string) {
	for key, value := range headers {
		h.Set(key, value)
	}
}
