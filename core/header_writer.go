package core

import (
	"net/http"
)

// headerWriter wraps a ResponseWriter and runs deferred header mutations at
// the last possible point: the moment headers are about to be flushed. This
// is how the stripper and the final override guarantee they act after
// anything the policy engine, inner middleware or the handler itself set.
// When several wrappers nest, the outermost one's callback runs last.
type headerWriter struct {
	http.ResponseWriter
	wroteHeader bool

	// beforeWrite runs exactly once, with the final header map and status,
	// immediately before WriteHeader is delegated.
	beforeWrite func(h http.Header, status int)
}

func (w *headerWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.beforeWrite(w.Header(), status)
	w.ResponseWriter.WriteHeader(status)
}

func (w *headerWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Flush keeps the wrapped writer usable for streaming handlers.
func (w *headerWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		if !w.wroteHeader {
			w.WriteHeader(http.StatusOK)
		}
		f.Flush()
	}
}
