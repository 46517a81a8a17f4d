package middleware

import (
	"net/http"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger tags each request with an id, attaches a request-scoped
// logger to the context (see zerolog.Ctx) and logs the outcome.
func RequestLogger(log zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			id, err := gonanoid.New()
			if err != nil {
				log.Error().Err(err).Msg("failed to generate request id")
			}
			requestID = id
		}
		w.Header().Set(RequestIDHeader, requestID)

		reqLog := log.With().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(reqLog.WithContext(r.Context())))

		event := reqLog.Info()
		if rec.status >= http.StatusInternalServerError {
			event = reqLog.Warn()
		}
		event.Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
