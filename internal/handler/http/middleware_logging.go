package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// requestLogging logs the method and path of a request before the handler
// runs, and the final status and duration in milliseconds afterwards.
type requestLogging struct{}

func (requestLogging) Intercept(w http.ResponseWriter, r *http.Request, next HandlerFunc) error {
	log := logger.FromRequest(r)

	start := time.Now()

	log.Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request")

	lw := &responseWriter{
		ResponseWriter: w,
	}

	err := next(lw, r)

	duration := time.Since(start)

	log.Info().
		Int("status", finalStatus(lw, err)).
		Float64("duration_ms", durationMillis(duration)).
		Int("size", lw.size).
		Msg("response")

	return err
}

// durationMillis converts d to fractional milliseconds.
func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// finalStatus is the status the client receives: the written one, 500 when
// an error is still to be answered by error containment, 200 otherwise.
func finalStatus(w *responseWriter, err error) int {
	switch {
	case w.wroteHeader:
		return w.status
	case err != nil:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}
