package http

import "net/http"

type (
	// responseData accumulates the status code and body size written while
	// serving a single request. Used by the logging middleware.
	responseData struct {
		status int
		size   int
	}

	// loggingResponseWriter wraps an http.ResponseWriter and records the
	// response status and size into the attached responseData.
	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}
