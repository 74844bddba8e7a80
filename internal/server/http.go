package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// httpServer runs one listener, in plain HTTP or, when tls is set, HTTPS.
type httpServer struct {
	name   string
	server *http.Server

	tls      bool
	certFile string
	keyFile  string

	logger *logger.Logger
}

func newHTTPServer(name, addr string, handler http.Handler, readHeaderTimeout time.Duration, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// withTLS switches the server to HTTPS. Empty certFile and keyFile make it
// rely on tlsConfig for certificates.
func (h *httpServer) withTLS(tlsConfig *tls.Config, certFile, keyFile string) *httpServer {
	h.tls = true
	h.server.TLSConfig = tlsConfig
	h.certFile = certFile
	h.keyFile = keyFile
	return h
}

func (h *httpServer) RunServer() error {
	h.logger.Info().Str("server", h.name).Str("address", h.server.Addr).Bool("tls", h.tls).Msg("launching server")

	var err error
	if h.tls {
		err = h.server.ListenAndServeTLS(h.certFile, h.keyFile)
	} else {
		err = h.server.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server: %w", h.name, err)
	}

	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Str("server", h.name).Msg("shutting down server")

	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s server shutdown: %w", h.name, err)
	}

	return nil
}
