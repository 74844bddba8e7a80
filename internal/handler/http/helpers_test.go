package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
)

const (
	testToken   = "valid-token"
	testVersion = "1.2.3"
	bearer      = "Bearer " + testToken
)

// newTestServices wires the real services over an empty slice-backed store.
func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)

	services, err := service.NewServices(storages, &config.StructuredConfig{
		App: config.App{Token: testToken, Version: testVersion},
	}, logger.Nop())
	require.NoError(t, err)

	return services
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, config.App{Token: testToken}, logger.Nop())
}

// newTestAPI returns the complete HTTP handler over a fresh store.
func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	return newTestHandler(t, newTestServices(t)).Init()
}

// doRequest sends a request through h. An empty auth sends no
// Authorization header.
func doRequest(t *testing.T, h http.Handler, method, target, auth, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// decodeBody decodes a JSON response body into a value of type T.
func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, utils.UnmarshalJSON(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.WithContext(r.Context()))
}

// injectBufferLogger puts a logger writing JSON lines to the returned buffer
// into the request context.
func injectBufferLogger(r *http.Request) (*http.Request, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := zerolog.New(buf)
	return r.WithContext(l.WithContext(r.Context())), buf
}

// logLines decodes every JSON log line written to buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, utils.UnmarshalJSON([]byte(line), &entry))
		lines = append(lines, entry)
	}
	return lines
}
