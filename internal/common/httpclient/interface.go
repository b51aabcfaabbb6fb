package httpclient

// RESTClient is the transport surface the store depends on. HTTPClient
// implements it over the network; TestClient implements it over an
// in-process handler for tests.
type RESTClient interface {
	// DoRequest makes a request and returns the raw response body.
	DoRequest(opts RequestOptions) ([]byte, error)

	// ListResources issues a GET against a collection path.
	ListResources(path string, queryParams map[string]string) ([]byte, error)

	// CreateResource issues a POST with a JSON body.
	CreateResource(path string, data []byte) ([]byte, error)

	// UpdateResource issues a PUT with a JSON body.
	UpdateResource(path string, data []byte, queryParams map[string]string) ([]byte, error)

	// DeleteResource issues a DELETE.
	DeleteResource(path string) error
}
