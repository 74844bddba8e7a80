package utils

import (
	"fmt"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails nothing is written and a wrapped error is returned,
// leaving the decision about the failure response to the caller.
//
// Example usage:
//
//	WriteJSON(w, models.User{ID: 1, Name: "Al"}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "User not found."}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := MarshalJSON(data)
	if err != nil {
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
