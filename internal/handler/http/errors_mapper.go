package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/store"
)

// errorStatusMap lists the errors a handler answers itself. Anything else
// is an unexpected fault and ends up as a 500 response.
var errorStatusMap = map[error]int{
	service.ErrInvalidID:  http.StatusBadRequest,
	ErrInvalidJSON:        http.StatusBadRequest,
	ErrInvalidPagination:  http.StatusBadRequest,
	store.ErrUserNotFound: http.StatusNotFound,

	store.ErrNotInMemoryDSN:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidID:  MsgInvalidID,
	ErrInvalidJSON:        MsgInvalidJSON,
	ErrInvalidPagination:  MsgInvalidPagination,
	store.ErrUserNotFound: MsgUserNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return MsgInternalServerError
}
