// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the user API.
//
// The primary abstraction is [UserAPI], which hides the transport from the
// command-line client. The package ships an HTTP/REST implementation
// ([NewHTTPUserAdapter]) built on go-resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401). The server's message is kept in the
// error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// UserAPI defines communication with the user API server. Implementations
// are responsible for serialisation, the Authorization header, and mapping
// transport-level errors to the sentinel values defined in this package.
type UserAPI interface {
	// ListUsers fetches one page of users. Zero page or pageSize leave the
	// parameter out, so the server defaults apply.
	ListUsers(ctx context.Context, page, pageSize int) (models.UserPage, error)

	// GetUser fetches the user with the given id.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser stores a new user built from the name and email of user and
	// returns it with its assigned id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser replaces name and email of the user with the given id.
	UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error)

	// DeleteUser removes the user with the given id and returns the server's
	// confirmation message.
	DeleteUser(ctx context.Context, id int64) (string, error)

	// GetServerVersion returns the version string reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
