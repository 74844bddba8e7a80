package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ipv4", input: "127.0.0.1:9000", wantHost: "127.0.0.1", wantPort: 9000},
		{name: "all interfaces", input: ":8443", wantHost: "", wantPort: 8443},
		{name: "ipv6", input: "[::1]:8080", wantHost: "::1", wantPort: 8080},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "hostname is not an ip", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":8443", (&NetAddress{Port: 8443}).String())
	assert.Equal(t, "[::1]:80", (&NetAddress{Host: "::1", Port: 80}).String())
}

func TestParseServerFlags(t *testing.T) {
	cfg, rest, err := parseServerFlags([]string{
		"-a", "localhost:8080",
		"-https-address", ":8443",
		"-tls-cert", "cert.pem",
		"-tls-key", "key.pem",
		"-autocert-hosts", "a.example.com, b.example.com,",
		"-autocert-cache-dir", "cache",
		"-d", ":memory:",
		"-t", "secret",
		"-config", "cfg.json",
		"-log-level", "info",
		"-read-header-timeout", "2s",
		"-shutdown-timeout", "30s",
	})
	require.NoError(t, err)
	assert.Empty(t, rest)

	assert.Equal(t, "secret", cfg.App.Token)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, ":8443", cfg.Server.HTTPSAddress)
	assert.Equal(t, TLS{
		CertFile:         "cert.pem",
		KeyFile:          "key.pem",
		AutocertHosts:    []string{"a.example.com", "b.example.com"},
		AutocertCacheDir: "cache",
	}, cfg.Server.TLS)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseServerFlags_Errors(t *testing.T) {
	_, _, err := parseServerFlags([]string{"-a", "nonsense"})
	require.Error(t, err)

	_, _, err = parseServerFlags([]string{"-unknown"})
	require.Error(t, err)
}

func TestParseClientFlags(t *testing.T) {
	cfg, rest, err := parseClientFlags([]string{
		"-a", "https://localhost:8443",
		"-t", "secret",
		"-timeout", "3s",
		"-insecure",
		"get", "1",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"get", "1"}, rest)
	assert.Equal(t, Adapter{
		Address:        "https://localhost:8443",
		Token:          "secret",
		RequestTimeout: 3 * time.Second,
		Insecure:       true,
	}, cfg.Adapter)
}
