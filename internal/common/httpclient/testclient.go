package httpclient

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// TestClient implements RESTClient against an in-process http.Handler.
// Requests are captured with httptest.NewRecorder, so no network is
// involved. It also records every request it serves so tests can assert
// which calls an operation did (or did not) make.
type TestClient struct {
	config  Configurator
	handler http.Handler

	mu       sync.Mutex
	requests []RecordedRequest
}

// RecordedRequest is one request the test client served.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

// NewTestClient creates a test client routing into the given handler.
func NewTestClient(config Configurator, handler http.Handler) *TestClient {
	return &TestClient{
		config:  config,
		handler: handler,
	}
}

// Requests returns a copy of every request served so far.
func (c *TestClient) Requests() []RecordedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]RecordedRequest, len(c.requests))
	copy(out, c.requests)
	return out
}

// CountRequests returns how many served requests match the given method and
// path.
func (c *TestClient) CountRequests(method, reqPath string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, r := range c.requests {
		if r.Method == method && r.Path == reqPath {
			n++
		}
	}
	return n
}

// ResetRequests clears the recorded request log.
func (c *TestClient) ResetRequests() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = nil
}

// DoRequest routes the request into the handler and returns the recorded
// response body, applying the same error mapping as the real client.
func (c *TestClient) DoRequest(opts RequestOptions) ([]byte, error) {
	u, err := url.Parse(c.config.GetServerURL())
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %v", err)
	}
	if u.Path == "" {
		u.Path = "/"
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

	c.mu.Lock()
	c.requests = append(c.requests, RecordedRequest{
		Method: opts.Method,
		Path:   u.Path,
		Query:  req.URL.Query(),
		Body:   append([]byte(nil), opts.Body...),
	})
	c.mu.Unlock()

	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)
	body := rr.Body.Bytes()

	if rr.Code >= 400 {
		return nil, newHTTPError(rr.Code, body)
	}

	return body, nil
}

// ListResources issues a GET against a collection path.
func (c *TestClient) ListResources(p string, queryParams map[string]string) ([]byte, error) {
	return c.DoRequest(RequestOptions{
		Method:      http.MethodGet,
		Path:        p,
		QueryParams: queryParams,
	})
}

// CreateResource issues a POST with a JSON body.
func (c *TestClient) CreateResource(p string, data []byte) ([]byte, error) {
	return c.DoRequest(RequestOptions{
		Method: http.MethodPost,
		Path:   p,
		Body:   data,
	})
}

// UpdateResource issues a PUT with a JSON body.
func (c *TestClient) UpdateResource(p string, data []byte, queryParams map[string]string) ([]byte, error) {
	return c.DoRequest(RequestOptions{
		Method:      http.MethodPut,
		Path:        p,
		QueryParams: queryParams,
		Body:        data,
	})
}

// DeleteResource issues a DELETE.
func (c *TestClient) DeleteResource(p string) error {
	_, err := c.DoRequest(RequestOptions{
		Method: http.MethodDelete,
		Path:   p,
	})
	return err
}
