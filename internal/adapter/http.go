package adapter

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

type httpUserAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUserAdapter constructs an HTTP/REST implementation of [UserAPI].
// It normalises and validates the base URL from cfg.Address and configures
// the underlying HTTP client with the request timeout, the bearer token and,
// when cfg.Insecure is set, disabled certificate verification.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid
// URL.
func NewHTTPUserAdapter(cfg config.Adapter, logger *logger.Logger) (UserAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}
	if cfg.Insecure {
		logger.Warn().Msg("server certificate verification is disabled")
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	a := &httpUserAdapter{client: client, logger: logger}
	client.OnAfterResponse(a.logResponse)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUserAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("response received")
	return nil
}

// ListUsers implements [UserAPI] with GET /users.
func (h *httpUserAdapter) ListUsers(ctx context.Context, page, pageSize int) (models.UserPage, error) {
	var result models.UserPage

	req := h.client.R().
		SetContext(ctx).
		SetResult(&result)
	if page != 0 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}
	if pageSize != 0 {
		req.SetQueryParam("pageSize", strconv.Itoa(pageSize))
	}

	resp, err := req.Get("/users")
	if err != nil {
		return models.UserPage{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPage{}, err
	}

	return result, nil
}

// GetUser implements [UserAPI] with GET /users/{id}.
func (h *httpUserAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	var result models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&result).
		Get("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result, nil
}

// CreateUser implements [UserAPI] with POST /users. Only name and email are
// sent.
func (h *httpUserAdapter) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var result models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(userPayload(user)).
		SetResult(&result).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result, nil
}

// UpdateUser implements [UserAPI] with PUT /users/{id}.
func (h *httpUserAdapter) UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error) {
	var result models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(userPayload(user)).
		SetResult(&result).
		Put("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result, nil
}

// DeleteUser implements [UserAPI] with DELETE /users/{id}.
func (h *httpUserAdapter) DeleteUser(ctx context.Context, id int64) (string, error) {
	var message string

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&message).
		Delete("/users/{id}")
	if err != nil {
		return "", fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return message, nil
}

// GetServerVersion implements [UserAPI] with GET /version.
func (h *httpUserAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// userPayload keeps only the client-settable fields.
func userPayload(user models.User) map[string]string {
	return map[string]string{
		"name":  user.Name,
		"email": user.Email,
	}
}
