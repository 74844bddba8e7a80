package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/acme/autocert"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/handler"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

type server struct {
	servers         []Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer builds the listeners for cfg. With TLS configured the API is
// served on the HTTPS address and the HTTP address redirects to it (and
// answers ACME challenges when autocert is used). Without TLS the API is
// served on the HTTP address.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	api := handlers.HTTP.Init()

	switch {
	case cfg.TLS.Autocert():
		manager := &autocert.Manager{
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(cfg.TLS.AutocertHosts...),
			Cache:      autocert.DirCache(cfg.TLS.AutocertCacheDir),
		}

		servers.servers = append(servers.servers,
			newHTTPServer("https", cfg.HTTPSAddress, api, cfg.ReadHeaderTimeout, logger).
				withTLS(manager.TLSConfig(), "", ""),
			newHTTPServer("redirect", cfg.HTTPAddress, manager.HTTPHandler(httpsRedirect(cfg.HTTPSAddress)), cfg.ReadHeaderTimeout, logger),
		)
	case cfg.TLS.Enabled():
		servers.servers = append(servers.servers,
			newHTTPServer("https", cfg.HTTPSAddress, api, cfg.ReadHeaderTimeout, logger).
				withTLS(nil, cfg.TLS.CertFile, cfg.TLS.KeyFile),
			newHTTPServer("redirect", cfg.HTTPAddress, httpsRedirect(cfg.HTTPSAddress), cfg.ReadHeaderTimeout, logger),
		)
	case cfg.HTTPAddress != "":
		logger.Warn().Msg("no TLS certificate configured, serving the API over plain HTTP")
		servers.servers = append(servers.servers,
			newHTTPServer("http", cfg.HTTPAddress, api, cfg.ReadHeaderTimeout, logger),
		)
	}

	if len(servers.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer runs every listener until SIGTERM, SIGINT or SIGQUIT arrives or
// one of them fails, then shuts all of them down.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

// Shutdown stops every listener and joins their errors.
func (s *server) Shutdown(ctx context.Context) error {
	errs := make([]error, 0, len(s.servers))
	for _, srv := range s.servers {
		errs = append(errs, srv.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func (s *server) run(ctx context.Context) error {
	if len(s.servers) == 0 {
		return errNoServersAreCreated
	}

	g, gctx := errgroup.WithContext(ctx)

	// launch all created servers
	for _, srv := range s.servers {
		g.Go(srv.RunServer)
	}

	// finish started servers once asked to stop or one of them failed
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
