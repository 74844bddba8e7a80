package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationErrors holds every message produced while validating a value,
// in evaluation order. A nil or empty ValidationErrors means the value is
// valid; validators never return an empty ValidationErrors as an error.
type ValidationErrors []string

// Error joins the messages with a single space.
func (v ValidationErrors) Error() string {
	return strings.Join(v, " ")
}
