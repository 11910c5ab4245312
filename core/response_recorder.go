package core

import (
	"net/http"
	"time"
)

// ResponseRecorder captures status and size for the request log.
type ResponseRecorder struct {
	http.ResponseWriter
	Status       int
	WroteHeader  bool
	BytesWritten int64
	StartTime    time.Time
}

// WriteHeader captures the status code and marks headers as written.
func (r *ResponseRecorder) WriteHeader(status int) {
	if !r.WroteHeader {
		r.Status = status
		r.WroteHeader = true
		r.ResponseWriter.WriteHeader(status)
	}
}

// Write captures bytes written and ensures headers are written first.
func (r *ResponseRecorder) Write(b []byte) (int, error) {
	if !r.WroteHeader {
		r.WriteHeader(http.StatusOK)
	}

	n, err := r.ResponseWriter.Write(b)
	r.BytesWritten += int64(n)
	return n, err
}

// Duration returns the time elapsed since the request started.
func (r *ResponseRecorder) Duration() time.Duration {
	return time.Since(r.StartTime)
}
