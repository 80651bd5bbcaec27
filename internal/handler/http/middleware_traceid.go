package http

import (
	"net/http"

	"github.com/google/uuid"
)

// withTraceID tags every request with a fresh trace id and attaches a
// request-scoped child logger carrying it to the request context, so all log
// lines produced while serving the request can be correlated.
//
// The trace id is also echoed back in the X-Trace-Id response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := uuid.NewString()

		childLogger := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := childLogger.WithContext(r.Context())

		w.Header().Set("X-Trace-Id", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
