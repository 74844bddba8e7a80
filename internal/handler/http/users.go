// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

// Pagination defaults applied when a query parameter is absent or empty.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// listUsers handles GET /users?page=&pageSize=.
// Missing parameters default to page 1 of 10 users; values below 1 are
// clamped to 1 by the service.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	page, pageSize, err := paginationFromQuery(r.URL.Query())
	if err != nil {
		return renderError(w, r, err)
	}

	result, err := h.services.UserService.ListUsers(r.Context(), page, pageSize)
	if err != nil {
		return renderError(w, r, err)
	}

	writeJSON(w, r, result, http.StatusOK)
	return nil
}

// getUser handles GET /users/{id}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	id, err := userIDFromPath(r)
	if err != nil {
		return renderError(w, r, err)
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		return renderError(w, r, err)
	}

	writeJSON(w, r, user, http.StatusOK)
	return nil
}

// createUser handles POST /users and answers 201 with the stored user and
// its location.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	var user models.User
	if err := utils.DecodeJSON(r.Body, &user); err != nil {
		return renderError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
	}

	created, err := h.services.UserService.CreateUser(r.Context(), models.User{Name: user.Name, Email: user.Email})
	if err != nil {
		return renderError(w, r, err)
	}

	w.Header().Set("Location", "/users/"+strconv.FormatInt(created.ID, 10))
	writeJSON(w, r, created, http.StatusCreated)
	return nil
}

// updateUser handles PUT /users/{id}. An unknown user is reported before
// any problem with the body.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) error {
	id, err := userIDFromPath(r)
	if err != nil {
		return renderError(w, r, err)
	}

	var user models.User
	if err = utils.DecodeJSON(r.Body, &user); err != nil {
		if _, lookupErr := h.services.UserService.GetUser(r.Context(), id); lookupErr != nil {
			return renderError(w, r, lookupErr)
		}
		return renderError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), id, models.User{Name: user.Name, Email: user.Email})
	if err != nil {
		return renderError(w, r, err)
	}

	writeJSON(w, r, updated, http.StatusOK)
	return nil
}

// deleteUser handles DELETE /users/{id} and answers with a JSON string
// confirmation.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) error {
	id, err := userIDFromPath(r)
	if err != nil {
		return renderError(w, r, err)
	}

	if err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		return renderError(w, r, err)
	}

	writeJSON(w, r, MsgUserDeleted, http.StatusOK)
	return nil
}

// userIDFromPath parses the {id} URL parameter. A value that is not an
// integer is reported like any other invalid id; the range check is left
// to the service.
func userIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", service.ErrInvalidID, err)
	}

	return id, nil
}

func paginationFromQuery(query url.Values) (page, pageSize int, err error) {
	page, err = intQueryParam(query, "page", DefaultPage)
	if err != nil {
		return 0, 0, err
	}

	pageSize, err = intQueryParam(query, "pageSize", DefaultPageSize)
	if err != nil {
		return 0, 0, err
	}

	return page, pageSize, nil
}

func intQueryParam(query url.Values, name string, def int) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidPagination, name, err)
	}

	return value, nil
}
