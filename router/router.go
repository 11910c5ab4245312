package router

import (
	"net/http"
)

// Router is the minimal surface the application needs from an HTTP router.
// Implementations live in subpackages so the concrete router stays swappable.
type Router interface {
	http.Handler

	// Handle registers a handler for all methods on path.
	Handle(path string, handler http.Handler)

	// HandleFunc registers a handler function for all methods on path.
	HandleFunc(path string, handler func(http.ResponseWriter, *http.Request))
}
