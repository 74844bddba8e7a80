// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Token == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidAppConfigs)
	}

	if err := cfg.Server.validate(); err != nil {
		return err
	}

	if dsn := cfg.Storage.DB.DSN; dsn != "" && !IsInMemoryDSN(dsn) {
		return fmt.Errorf("%w: only in-memory databases are supported, got %q", ErrInvalidStorageConfigs, dsn)
	}

	return validateLogLevel(cfg.Log.Level)
}

func (s Server) validate() error {
	if s.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if (s.TLS.CertFile == "") != (s.TLS.KeyFile == "") {
		return fmt.Errorf("%w: TLS certificate and key must be set together", ErrInvalidServerConfigs)
	}

	if s.TLS.Enabled() && (s.HTTPSAddress == "" || s.HTTPSAddress == s.HTTPAddress) {
		return fmt.Errorf("%w: HTTPS address must be set and differ from HTTP address", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.Address == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return validateLogLevel(cfg.Log.Level)
}

func validateLogLevel(level string) error {
	if level == "" {
		return nil
	}

	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

// IsInMemoryDSN reports whether dsn denotes a volatile go-sqlite3 database.
func IsInMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
