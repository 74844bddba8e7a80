package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

// writeJSON writes data with the given status. A failed write means the
// client is gone, so it is only logged.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Warn().Err(err).Int("status", status).Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, models.ErrorResponse{Error: message}, status)
}

// renderError answers the expected errors of the user API and returns
// every other error unchanged for the error containment stage.
func renderError(w http.ResponseWriter, r *http.Request, err error) error {
	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		writeJSON(w, r, models.ValidationErrorResponse{Errors: validationErrs}, http.StatusBadRequest)
		return nil
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		return err
	}

	writeError(w, r, status, messageFromError(err))
	return nil
}
