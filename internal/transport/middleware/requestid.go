package middleware

import (
	"net/http"

	"github.com/frahmantamala/job-portal/pkg/logger"

	"github.com/google/uuid"
)

// RequestID honors an inbound X-Trace-ID or mints one, stamps it onto the
// response, and binds it to the request-scoped logger so every log line for
// the request carries the same trace id.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		w.Header().Set("X-Trace-ID", traceID)

		ctx := logger.With(r.Context(), "trace_id", traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
