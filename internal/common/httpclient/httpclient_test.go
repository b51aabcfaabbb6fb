package httpclient

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	serverURL string
}

func (c *testConfig) GetServerURL() string {
	return c.serverURL
}

func newBackend() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/models/", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[{"model_id":"m1","model_name":"solar-mini","model_type":"LLM"}]`))
	})
	r.Get("/api/v1/sessions/search", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"status":"` + req.URL.Query().Get("status") + `"}`))
	})
	r.Post("/api/v1/models/", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"model_id":"m2"}`))
	})
	r.Put("/api/v1/departments/d1/manager", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("manager_user_id") == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"manager_user_id is required"}`))
			return
		}
		w.Write([]byte(`{}`))
	})
	r.Delete("/api/v1/models/m1", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func newTestClient(t *testing.T) *TestClient {
	t.Helper()
	return NewTestClient(&testConfig{serverURL: "http://localhost:8000"}, newBackend())
}

func TestListResources(t *testing.T) {
	client := newTestClient(t)

	body, err := client.ListResources("/api/v1/models/", nil)
	require.NoError(t, err)
	assert.Contains(t, string(body), "solar-mini")
}

func TestQueryParamsArePassedThrough(t *testing.T) {
	client := newTestClient(t)

	body, err := client.ListResources("/api/v1/sessions/search", map[string]string{"status": "완료"})
	require.NoError(t, err)
	assert.Contains(t, string(body), "완료")
}

func TestErrorMessageExtraction(t *testing.T) {
	client := newTestClient(t)

	_, err := client.UpdateResource("/api/v1/departments/d1/manager", nil, nil)
	require.Error(t, err)

	httpErr, ok := err.(*HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "manager_user_id is required", httpErr.Message)
}

func TestDeleteResource(t *testing.T) {
	client := newTestClient(t)

	err := client.DeleteResource("/api/v1/models/m1")
	require.NoError(t, err)
	assert.Equal(t, 1, client.CountRequests(http.MethodDelete, "/api/v1/models/m1"))
}

func TestRequestRecording(t *testing.T) {
	client := newTestClient(t)

	_, err := client.CreateResource("/api/v1/models/", []byte(`{"model_name":"x","model_type":"LLM"}`))
	require.NoError(t, err)

	reqs := client.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/api/v1/models/", reqs[0].Path)
	assert.Contains(t, string(reqs[0].Body), "model_name")

	client.ResetRequests()
	assert.Empty(t, client.Requests())
}

func TestNewHTTPErrorFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"detail field", `{"detail":"not found"}`, "not found"},
		{"error field", `{"error":"boom"}`, "boom"},
		{"raw body", `plain failure`, "plain failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newHTTPError(500, []byte(tt.body))
			assert.Equal(t, tt.expected, err.Message)
			assert.Equal(t, 500, err.StatusCode)
		})
	}
}
