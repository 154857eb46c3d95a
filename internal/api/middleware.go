// filepath: internal/api/middleware.go
package api

import (
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"wardbulletin/internal/logging"
)

// RequestIDMiddleware attaches a ULID to every request so log lines from
// the same request can be correlated. ulid.Make is safe for concurrent
// handler goroutines.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ulid.Make().String()
		w.Header().Set("X-Request-ID", id)
		r.Header.Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// AccessLogMiddleware logs one structured line per completed request.
func AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Websocket upgrades hijack the connection; the recorder would
		// break that.
		if r.Header.Get("Upgrade") == "websocket" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logging.Log.WithFields(logrus.Fields{
			"request_id": r.Header.Get("X-Request-ID"),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   time.Since(start).String(),
			"remote":     r.RemoteAddr,
		}).Debug("request completed")
	})
}
