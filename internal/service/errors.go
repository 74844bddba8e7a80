package service

import "errors"

var (
	// ErrInvalidID is returned for user ids lower than 1.
	ErrInvalidID = errors.New("invalid user id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
