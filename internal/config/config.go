// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-user-keeper binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the access token and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the user record store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses, TLS material and timeouts of the
	// HTTP(S) server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the command-line client uses to reach
	// the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Token is the only access token accepted in the "Authorization" header.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Version is the version string reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the user record store.
type Storage struct {
	// DB holds the SQL backend settings. An empty DSN selects the
	// slice-backed in-memory store.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQL backend.
type DB struct {
	// DSN is a go-sqlite3 data source name of an in-memory database
	// (e.g. "file::memory:?cache=shared").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network, TLS and timeout settings for the inbound transport.
type Server struct {
	// HTTPAddress is the plain HTTP listen address. With TLS enabled it only
	// serves redirects to HTTPS; without TLS it serves the API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// HTTPSAddress is the HTTPS listen address used when TLS is enabled.
	// Env: SERVER_HTTPS_ADDRESS
	HTTPSAddress string `env:"HTTPS_ADDRESS"`

	// TLS holds certificate settings.
	TLS TLS `envPrefix:"TLS_"`

	// ReadHeaderTimeout bounds the time allowed to read request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of every listener.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// TLS holds either a static certificate pair or ACME autocert settings.
type TLS struct {
	// CertFile and KeyFile are PEM files of a static certificate.
	// Env: SERVER_TLS_CERT_FILE, SERVER_TLS_KEY_FILE
	CertFile string `env:"CERT_FILE"`
	KeyFile  string `env:"KEY_FILE"`

	// AutocertHosts enables ACME certificates for the listed host names.
	// Env: SERVER_TLS_AUTOCERT_HOSTS (comma separated)
	AutocertHosts []string `env:"AUTOCERT_HOSTS" envSeparator:","`

	// AutocertCacheDir is the directory where ACME certificates are cached.
	// Env: SERVER_TLS_AUTOCERT_CACHE_DIR
	AutocertCacheDir string `env:"AUTOCERT_CACHE_DIR"`
}

// Enabled reports whether any TLS material is configured.
func (t TLS) Enabled() bool {
	return t.Autocert() || (t.CertFile != "" && t.KeyFile != "")
}

// Autocert reports whether certificates are obtained through ACME.
func (t TLS) Autocert() bool {
	return len(t.AutocertHosts) > 0
}

// Adapter holds the client-side view of the server.
type Adapter struct {
	// Address is the base URL of the server (e.g. "https://localhost:8443").
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// Token is sent as "Authorization: Bearer <token>".
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the timeout of a single request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Insecure disables server certificate verification, for self-signed
	// development certificates.
	// Env: ADAPTER_INSECURE
	Insecure bool `env:"INSECURE"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from the process environment and command-line arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig loads the server configuration using args as the
// command-line arguments. Sources are merged in the following priority order
// (an earlier source wins for every field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(parseServerFlags, args).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
