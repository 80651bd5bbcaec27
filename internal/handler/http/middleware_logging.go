package http

import (
	"net/http"
	"time"

	"github.com/Sanagocat/My-blog-back-end/internal/logger"
)

// withLogging emits one structured log line per request: method, URI,
// response status, body size and wall-clock duration.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rd := &responseData{status: http.StatusOK}
		lw := &loggingResponseWriter{ResponseWriter: w, responseData: rd}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rd.status).
			Int("size", rd.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
