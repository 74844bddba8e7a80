// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// tokenCheck rejects every request whose "Authorization" header does not
// carry the configured access token.
//
// It responds with HTTP 401 Unauthorized and does not call the rest of the
// chain when:
//   - the header is absent or has no token ({"error":"No token provided."});
//   - the token differs from the configured one ({"error":"Invalid token."}).
//
// All rejections are logged with the request method and path using the
// context-scoped logger obtained via [logger.FromRequest].
type tokenCheck struct {
	token string
}

func newTokenCheck(token string) *tokenCheck {
	return &tokenCheck{token: token}
}

func (a *tokenCheck) Intercept(w http.ResponseWriter, r *http.Request, next HandlerFunc) error {
	log := logger.FromRequest(r)

	token := getTokenFromAuthHeader(r.Header.Get("Authorization"))
	if token == "" {
		log.Warn().Err(ErrEmptyToken).Str("method", r.Method).Str("path", r.URL.Path).Msg("request rejected")
		writeError(w, r, http.StatusUnauthorized, MsgNoTokenProvided)
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
		log.Warn().Err(ErrInvalidToken).Str("method", r.Method).Str("path", r.URL.Path).Msg("request rejected")
		writeError(w, r, http.StatusUnauthorized, MsgInvalidToken)
		return nil
	}

	return next(w, r)
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value:
//
//	Authorization: <scheme> <token>
//
// The token is everything after the last space, so the scheme (and anything
// else before the token) is ignored. A header without spaces is taken as
// the token itself. An empty result means no token was provided.
func getTokenFromAuthHeader(authHeader string) string {
	return authHeader[strings.LastIndex(authHeader, " ")+1:]
}
