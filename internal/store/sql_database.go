// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/migrations"
)

// DB wraps a *sql.DB together with the logger used by its migrations.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies every embedded schema migration.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.logger)
}
