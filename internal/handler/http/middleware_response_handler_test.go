package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{name: "201 Created", statusCodes: []int{http.StatusCreated}, expectedStatus: http.StatusCreated},
		{name: "401 Unauthorized", statusCodes: []int{http.StatusUnauthorized}, expectedStatus: http.StatusUnauthorized},
		{name: "second call is ignored", statusCodes: []int{http.StatusNotFound, http.StatusInternalServerError}, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.True(t, w.wroteHeader)
			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte(`{"id":1}`))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	_, err = w.Write([]byte("\n"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status, "Write must imply 200")
	assert.Equal(t, 9, w.size)
	assert.Equal(t, "{\"id\":1}\n", rr.Body.String())
}

func TestResponseWriter_Untouched(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.False(t, w.wroteHeader)
	assert.Zero(t, w.status)
	assert.Zero(t, w.size)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
	require.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rr.Flushed)
}
