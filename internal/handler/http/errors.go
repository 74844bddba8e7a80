// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the token check when parsing the "Authorization"
// HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyToken is logged when the "Authorization" header is absent or
	// carries no token after its last space.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidToken is logged when the token differs from the configured one.
	ErrInvalidToken = errors.New("invalid token in `Authorization` header")

	// ErrInvalidPagination is returned for non-integer page or pageSize values.
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// ErrInvalidJSON is returned when a request body is not a JSON user.
	ErrInvalidJSON = errors.New("invalid json body")
)

// Messages sent to clients in error responses.
const (
	MsgInternalServerError = "Internal server error."
	MsgNoTokenProvided     = "No token provided."
	MsgInvalidToken        = "Invalid token."
	MsgInvalidID           = "Invalid ID. ID must be greater than 0."
	MsgUserNotFound        = "User not found."
	MsgInvalidJSON         = "Invalid JSON was passed."
	MsgInvalidPagination   = "Invalid pagination parameters."
	MsgNotFound            = "Not found."
	MsgMethodNotAllowed    = "Method not allowed."

	// MsgUserDeleted is the body of a successful delete.
	MsgUserDeleted = "User successfully deleted."
)
