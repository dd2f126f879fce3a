package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LoggerMiddleware tags each request with a request ID, echoes it as
// X-Request-Id and logs the request line after the handler runs.
func LoggerMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set("X-Request-Id", requestID)

			reqLogger := logger.With().Str("request_id", requestID).Logger()
			r = r.WithContext(reqLogger.WithContext(r.Context()))

			next.ServeHTTP(w, r)

			// Query strings can carry user identifiers; log the path only.
			reqLogger.Debug().Msgf("%s %s", r.Method, r.URL.Path)
		})
	}
}
