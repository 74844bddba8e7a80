package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient talking to baseURL with the given
// per-request timeout. A zero timeout disables the limit.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://localhost:8443", 5*time.Second)
//	resp, err := client.R().
//	    SetHeader("Authorization", "Bearer valid-token").
//	    Get("/users")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(MarshalJSON).
		SetJSONUnmarshaler(UnmarshalJSON)

	return &HTTPClient{Client: client}
}
