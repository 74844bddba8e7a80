package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer without dereferencing it, so nil is safe for
// construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		server  config.Server
		wantErr error
	}{
		{name: "http address", server: config.Server{HTTPAddress: ":8080"}},
		{name: "https address", server: config.Server{HTTPSAddress: ":8443"}},
		{name: "both addresses", server: config.Server{HTTPAddress: ":8080", HTTPSAddress: ":8443"}},
		{name: "no address", server: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.StructuredConfig{
				App:    config.App{Token: "secret"},
				Server: tt.server,
			}

			h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
		})
	}
}
