// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the record store of user accounts.
//
// Implementations must be safe for concurrent use: every method observes
// and produces a consistent state of the whole collection. Records are
// returned by value; no caller ever shares memory with stored state.
type UserRepository interface {
	// ListUsers returns at most limit users starting at offset, in insertion
	// order, together with the total number of stored users. An offset past
	// the end yields an empty, non-nil slice.
	ListUsers(ctx context.Context, offset, limit int) ([]models.User, int, error)

	// FindUserByID returns the user with the given id or [ErrUserNotFound].
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// CreateUser stores a new user under the next free id and returns it.
	// The ID of the passed user is ignored.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser overwrites name and email of the user identified by
	// user.ID and returns the stored record, or [ErrUserNotFound].
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the user with the given id or returns
	// [ErrUserNotFound].
	DeleteUser(ctx context.Context, id int64) error
}
