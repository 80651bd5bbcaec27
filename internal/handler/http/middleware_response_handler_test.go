package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingResponseWriter_CapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rd := &responseData{}
	lw := &loggingResponseWriter{ResponseWriter: rec, responseData: rd}

	lw.WriteHeader(http.StatusTeapot)
	n, err := lw.Write([]byte("short and stout"))

	assert.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.Equal(t, http.StatusTeapot, rd.status)
	assert.Equal(t, 15, rd.size)
}

func TestLoggingResponseWriter_AccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rd := &responseData{}
	lw := &loggingResponseWriter{ResponseWriter: rec, responseData: rd}

	_, _ = lw.Write([]byte("abc"))
	_, _ = lw.Write([]byte("defg"))

	assert.Equal(t, 7, rd.size)
}
