// Package httpclient provides the HTTP adapter the console uses to talk to
// the platform backend. It wraps outbound calls with a configurable base
// URL and typed error handling. There is deliberately no retry, no request
// timeout, no cancellation, and no authentication header injection: the
// backend sits on a trusted internal network and the console's consistency
// model depends on requests running to completion.
package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/tidwall/gjson"
)

// Configurator provides the single piece of configuration the adapter
// needs: where the backend lives.
type Configurator interface {
	GetServerURL() string
}

// HTTPError represents a non-2xx response from the backend.
type HTTPError struct {
	StatusCode int    // HTTP status code of the error
	Message    string // message extracted from the response body
}

// Error implements the error interface for HTTPError.
func (e *HTTPError) Error() string {
	return e.Message
}

// HTTPClient makes requests to the platform's REST API.
type HTTPClient struct {
	config     Configurator
	httpClient *http.Client
}

// NewClient creates a new HTTP client using the provided configuration.
func NewClient(config Configurator) *HTTPClient {
	return &HTTPClient{
		config:     config,
		httpClient: &http.Client{},
	}
}

// RequestOptions contains options for making HTTP requests. QueryParams
// and Body are optional.
type RequestOptions struct {
	Method      string            // HTTP method (GET, POST, PUT, DELETE)
	Path        string            // API endpoint path
	QueryParams map[string]string // optional query parameters
	Body        []byte            // optional JSON request body
}

// DoRequest makes an HTTP request with the given options and returns the
// response body. Non-2xx responses become *HTTPError with the message
// pulled from the body's "detail" or "error" field when present.
func (c *HTTPClient) DoRequest(opts RequestOptions) ([]byte, error) {
	u, err := url.Parse(c.config.GetServerURL())
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %v", err)
	}
	u.Path = joinPath(u.Path, opts.Path)

	q := u.Query()
	for k, v := range opts.QueryParams {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(opts.Method, u.String(), bytes.NewBuffer(opts.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode >= 400 {
		return nil, newHTTPError(resp.StatusCode, body)
	}

	return body, nil
}

// joinPath joins a base path with an endpoint path. The backend's
// collection endpoints end in a slash and redirect without it, so the
// trailing slash path.Join strips is restored.
func joinPath(base, endpoint string) string {
	joined := path.Join(base, endpoint)
	if strings.HasSuffix(endpoint, "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return joined
}

// newHTTPError builds an HTTPError from a failed response body. FastAPI
// style backends put the message under "detail"; older handlers use
// "error".
func newHTTPError(statusCode int, body []byte) *HTTPError {
	msg := gjson.GetBytes(body, "detail").String()
	if msg == "" {
		msg = gjson.GetBytes(body, "error").String()
	}
	if msg == "" {
		msg = string(body)
	}
	return &HTTPError{
		StatusCode: statusCode,
		Message:    msg,
	}
}

// ListResources issues a GET against a collection path with optional query
// parameters and returns the response body.
func (c *HTTPClient) ListResources(p string, queryParams map[string]string) ([]byte, error) {
	return c.DoRequest(RequestOptions{
		Method:      http.MethodGet,
		Path:        p,
		QueryParams: queryParams,
	})
}

// CreateResource issues a POST with the given JSON body.
func (c *HTTPClient) CreateResource(p string, data []byte) ([]byte, error) {
	return c.DoRequest(RequestOptions{
		Method: http.MethodPost,
		Path:   p,
		Body:   data,
	})
}

// UpdateResource issues a PUT with the given JSON body and optional query
// parameters.
func (c *HTTPClient) UpdateResource(p string, data []byte, queryParams map[string]string) ([]byte, error) {
	return c.DoRequest(RequestOptions{
		Method:      http.MethodPut,
		Path:        p,
		QueryParams: queryParams,
		Body:        data,
	})
}

// DeleteResource issues a DELETE against the given path.
func (c *HTTPClient) DeleteResource(p string) error {
	_, err := c.DoRequest(RequestOptions{
		Method: http.MethodDelete,
		Path:   p,
	})
	return err
}
