package httprouter

import (
	"net/http"

	"github.com/caasmo/imprint/router"
	jshttprouter "github.com/julienschmidt/httprouter"
)

// Implementation of the router interface
type Router struct {
	rt *jshttprouter.Router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.rt.ServeHTTP(w, req)
}

func (r *Router) Handle(path string, handler http.Handler) {
	r.rt.Handler(http.MethodGet, path, handler)
	r.rt.Handler(http.MethodHead, path, handler)
	r.rt.Handler(http.MethodPost, path, handler)
}

func (r *Router) HandleFunc(path string, handler func(http.ResponseWriter, *http.Request)) {
	r.Handle(path, http.HandlerFunc(handler))
}

func New() router.Router {
	rt := jshttprouter.New()
	// The cache-policy layers key off the raw request path; trailing-slash
	// redirects would bypass them for a 301 that carries no cache headers.
	rt.RedirectTrailingSlash = false
	return &Router{rt: rt}
}
