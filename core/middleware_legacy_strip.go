package core

import (
	"net/http"
	"strings"
)

// LegacyHeaderStrip removes security-theatre headers from HTML responses.
// The removal is deferred to header flush time so it catches headers set by
// any earlier layer, a global security-header middleware included. Non-HTML
// responses pass through untouched.
//
// A response counts as HTML when any one signal says so: the route shape, the
// request's Accept header, or the Content-Type the handler ended up setting.
func (a *App) LegacyHeaderStrip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		class := Classify(r.URL.Path)
		acceptsHtml := strings.Contains(r.Header.Get("Accept"), "text/html")

		hw := &headerWriter{
			ResponseWriter: w,
			beforeWrite: func(h http.Header, status int) {
				if !isHtmlResponse(class, acceptsHtml, h) {
					return
				}
				for _, name := range legacyHeaders {
					h.Del(name)
				}
			},
		}
		next.ServeHTTP(hw, r)
	})
}

func isHtmlResponse(class RouteClass, acceptsHtml bool, h http.Header) bool {
	if class == ClassHtmlPage {
		return true
	}
	if acceptsHtml && class != ClassApi && class != ClassStaticAsset {
		return true
	}
	return strings.Contains(h.Get("Content-Type"), "text/html")
}
