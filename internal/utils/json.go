package utils

import (
	"io"

	"github.com/bytedance/sonic"
)

// jsonAPI is the sonic configuration shared by every JSON helper of the
// application. ConfigStd keeps encoding/json semantics (sorted map keys,
// HTML escaping, case-insensitive field matching on decode).
var jsonAPI = sonic.ConfigStd

// MarshalJSON encodes v to JSON.
func MarshalJSON(v any) ([]byte, error) {
	return jsonAPI.Marshal(v)
}

// UnmarshalJSON decodes data into v.
func UnmarshalJSON(data []byte, v any) error {
	return jsonAPI.Unmarshal(data, v)
}

// DecodeJSON reads r to the end and decodes it into v. The input must be
// exactly one JSON value: trailing data other than whitespace is an error.
func DecodeJSON(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	return jsonAPI.Unmarshal(data, v)
}

// EncodeJSON writes v to w as JSON followed by a newline.
func EncodeJSON(w io.Writer, v any) error {
	return jsonAPI.NewEncoder(w).Encode(v)
}
