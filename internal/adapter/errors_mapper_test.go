package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "single error", body: `{"error":"User not found."}`, want: "User not found."},
		{name: "validation errors", body: `{"Errors":["Name is required.","Email is required."]}`, want: "Name is required. Email is required."},
		{name: "plain text", body: "  gateway timeout\n", want: "gateway timeout"},
		{name: "json string", body: `"oops"`, want: `"oops"`},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage([]byte(tt.body)))
		})
	}
}
