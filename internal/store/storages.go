// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// Storages groups every repository handed to the service layer.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages builds the record store selected by cfg. An empty DSN selects
// the slice-backed store; otherwise an in-memory SQLite database is opened
// and migrated.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("using slice-backed user store")
		return &Storages{
			UserRepository: NewMemoryUserRepository(log),
		}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to sqlite: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating sqlite: %w", err)
	}

	log.Info().Msg("using in-memory sqlite user store")
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the database connection, if any. Stored users are lost.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
