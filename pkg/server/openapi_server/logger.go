// SPDX-License-Identifier: MIT

package openapi_server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries the id of a request in both directions.
const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logger tags every request with an id, reusing the one sent by the client, and writes one
// access log line to the default slog logger.
func Logger(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		inner.ServeHTTP(recorder, r)

		slog.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"uri", r.RequestURI,
			"route", name,
			"status", recorder.status,
			"duration", time.Since(start))
	})
}
