package client

import "errors"

var (
	// ErrUnknownCommand is returned for an empty or unsupported command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrWrongArguments is returned when a command gets the wrong number of
	// operands or an operand that is not a number.
	ErrWrongArguments = errors.New("wrong arguments")
)
