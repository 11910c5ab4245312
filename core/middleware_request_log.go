package core

import (
	"net/http"
	"time"
)

// RequestLog logs one structured line per request.
func (a *App) RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &ResponseRecorder{
			ResponseWriter: w,
			StartTime:      time.Now(),
		}

		next.ServeHTTP(rec, r)

		a.logger.Info("http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"class", Classify(r.URL.Path).String(),
			"status", rec.Status,
			"bytes", rec.BytesWritten,
			"duration_ms", rec.Duration().Milliseconds(),
		)
	})
}
