// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// errorContainment is the outermost pipeline stage and the only place where
// faults are turned into responses. Errors returned by the rest of the chain
// and panics raised in it both produce a 500 {"error":"Internal server
// error."} response, unless a response was already started. The stage never
// returns an error.
//
// [http.ErrAbortHandler] is re-raised so that net/http can abort the
// connection as requested.
type errorContainment struct{}

func (errorContainment) Intercept(w http.ResponseWriter, r *http.Request, next HandlerFunc) (err error) {
	rw := &responseWriter{ResponseWriter: w}

	defer func() {
		if rec := recover(); rec != nil {
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			err = fmt.Errorf("panic: %v", rec)
		}

		if err == nil {
			return
		}

		logger.FromRequest(r).Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("internal server error")

		if !rw.wroteHeader {
			writeError(rw, r, http.StatusInternalServerError, MsgInternalServerError)
		}
		err = nil
	}()

	return next(rw, r)
}
