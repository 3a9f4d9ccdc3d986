// Package client is a Go client for the organization admin API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config represents the configuration for the admin API client
type Config struct {
	// BaseURL is the server root, e.g. http://localhost:5000
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the per-request timeout; zero means none
	Timeout time.Duration
}

// Client calls the organization admin API.
type Client struct {
	rest *resty.Client
}

// New creates a client for the API at cfg.BaseURL.
func New(cfg Config) *Client {
	var rest *resty.Client
	if cfg.HTTPClient != nil {
		rest = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rest = resty.New()
	}
	rest.SetBaseURL(cfg.BaseURL + "/api")
	rest.SetHeaders(map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	})
	if cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}
	return &Client{rest: rest}
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("admin api: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("admin api: %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// do sends the request and decodes the body into result on success.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	apiErr := &APIError{}
	req := c.rest.R().SetContext(ctx).SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("admin api: %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		return apiErr
	}
	return nil
}

func organizationPath(id uint64) string {
	return "/organizations/" + strconv.FormatUint(id, 10)
}

func userPath(id uint64) string {
	return "/users/" + strconv.FormatUint(id, 10)
}
