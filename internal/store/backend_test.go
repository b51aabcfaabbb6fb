package store

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/modelops/llmadmin/internal/common/httpclient"
	"github.com/modelops/llmadmin/pkg/api"
)

type testConfig struct{}

func (testConfig) GetServerURL() string { return "http://localhost:8000" }

// backend is an in-memory stand-in for the platform API, mounted behind
// the recording test transport. Handlers implement just enough of each
// endpoint's contract for the store to exercise its side.
type backend struct {
	mu          sync.Mutex
	users       []api.UserRecord
	departments []api.DepartmentRecord
	projects    []api.ProjectRecord
	sessions    []api.Session
	sessionLogs []api.SessionLog
	models      []api.Model
	deployments []api.Deployment
	datasets    []api.Dataset
	templates   []api.PromptTemplate

	erroredUsers []map[string]any
	stoppedUsers []map[string]any
	stakeholders []map[string]any

	failModels bool // force 500s on the model endpoints
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (b *backend) router() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			name := req.URL.Query().Get("user_name")
			role := req.URL.Query().Get("role")
			out := []api.UserRecord{}
			for _, u := range b.users {
				if name != "" && !strings.Contains(u.UserName, name) {
					continue
				}
				if role != "" && u.Role != role {
					continue
				}
				out = append(out, u)
			}
			writeJSON(w, out)
		})
		r.Get("/department/{id}", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			id := chi.URLParam(req, "id")
			out := []api.UserRecord{}
			for _, u := range b.users {
				if u.DepartmentID == id {
					out = append(out, u)
				}
			}
			writeJSON(w, out)
		})
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var in api.CreateUserRequest
			json.NewDecoder(req.Body).Decode(&in)
			b.mu.Lock()
			b.users = append(b.users, api.UserRecord{
				UserID:       uuid.NewString(),
				UserName:     in.UserName,
				UserEmail:    in.UserEmail,
				Role:         in.Role,
				IsActive:     "Y",
				DepartmentID: in.DepartmentID,
			})
			b.mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]int{"result": 1})
		})
		r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			var in api.UpdateUserRequest
			json.NewDecoder(req.Body).Decode(&in)
			id := chi.URLParam(req, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, u := range b.users {
				if u.UserID == id {
					b.users[i].UserName = in.UserName
					b.users[i].UserEmail = in.UserEmail
					b.users[i].Role = in.Role
					b.users[i].IsActive = in.IsActive
					b.users[i].DepartmentID = in.DepartmentID
					writeJSON(w, map[string]int{"result": 1})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, map[string]string{"detail": "user not found"})
		})
		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			kept := b.users[:0]
			for _, u := range b.users {
				if u.UserID != id {
					kept = append(kept, u)
				}
			}
			b.users = kept
			w.WriteHeader(http.StatusNoContent)
		})
		r.Get("/stats/role-distribution", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, []map[string]any{{"role": "Engineer", "count": 4}})
		})
		r.Get("/stats/role-and-managers", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			out := b.stakeholders
			if out == nil {
				out = []map[string]any{}
			}
			writeJSON(w, out)
		})
		r.Get("/stats/min-sessions", func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Query().Get("min_sessions") != "" {
				writeJSON(w, []map[string]any{
					{"user_id": "u9", "user_name": "tuned", "session_count": 12},
				})
				return
			}
			writeJSON(w, []map[string]any{
				{"user_id": "u1", "user_name": "heavy", "session_count": 8},
			})
		})
		r.Get("/stats/with-sessions", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			switch req.URL.Query().Get("session_status") {
			case string(api.SessionError):
				writeJSON(w, b.erroredUsers)
			case string(api.SessionStopped):
				writeJSON(w, b.stoppedUsers)
			default:
				writeJSON(w, []map[string]any{})
			}
		})
	})

	r.Route("/api/v1/departments", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			writeJSON(w, b.departments)
		})
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var in api.CreateDepartmentRequest
			json.NewDecoder(req.Body).Decode(&in)
			b.mu.Lock()
			b.departments = append(b.departments, api.DepartmentRecord{
				DepartmentID:   uuid.NewString(),
				DepartmentName: in.DepartmentName,
			})
			b.mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]int{"result": 1})
		})
		r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			var in map[string]string
			json.NewDecoder(req.Body).Decode(&in)
			id := chi.URLParam(req, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, d := range b.departments {
				if d.DepartmentID == id {
					b.departments[i].DepartmentName = in["department_name"]
					if m, ok := in["manager_user_id"]; ok {
						b.departments[i].ManagerUserID = m
					}
					writeJSON(w, map[string]int{"result": 1})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, map[string]string{"detail": "department not found"})
		})
		r.Put("/{id}/manager", func(w http.ResponseWriter, req *http.Request) {
			managerID := req.URL.Query().Get("manager_user_id")
			if managerID == "" {
				w.WriteHeader(http.StatusBadRequest)
				writeJSON(w, map[string]string{"detail": "manager_user_id is required"})
				return
			}
			id := chi.URLParam(req, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			for _, u := range b.users {
				if u.UserID == managerID {
					for i, d := range b.departments {
						if d.DepartmentID == id {
							b.departments[i].ManagerUserID = managerID
							b.departments[i].ManagerName = u.UserName
						}
					}
					writeJSON(w, map[string]int{"result": 1})
					return
				}
			}
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, map[string]string{"detail": "manager must be a member of the department"})
		})
		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			kept := b.departments[:0]
			for _, d := range b.departments {
				if d.DepartmentID != id {
					kept = append(kept, d)
				}
			}
			b.departments = kept
			w.WriteHeader(http.StatusNoContent)
		})
	})

	r.Route("/api/v1/projects", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			writeJSON(w, b.projects)
		})
		r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			name := req.URL.Query().Get("project_name")
			out := []api.ProjectRecord{}
			for _, p := range b.projects {
				if name == "" || strings.Contains(p.ProjectName, name) {
					out = append(out, p)
				}
			}
			writeJSON(w, out)
		})
		r.Get("/stats/by-department", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, []map[string]any{{"department_name": "ML Platform", "project_count": 3}})
		})
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var in api.CreateProjectRequest
			json.NewDecoder(req.Body).Decode(&in)
			b.mu.Lock()
			b.projects = append(b.projects, api.ProjectRecord{
				ProjectID:     uuid.NewString(),
				ProjectName:   in.ProjectName,
				Description:   in.Description,
				CreatorUserID: in.CreatorUserID,
				DepartmentID:  in.DepartmentID,
			})
			b.mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]int{"result": 1})
		})
		r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			var in api.UpdateProjectRequest
			json.NewDecoder(req.Body).Decode(&in)
			id := chi.URLParam(req, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, p := range b.projects {
				if p.ProjectID == id {
					b.projects[i].ProjectName = in.ProjectName
					b.projects[i].Description = in.Description
				}
			}
			writeJSON(w, map[string]int{"result": 1})
		})
		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			kept := b.projects[:0]
			for _, p := range b.projects {
				if p.ProjectID != id {
					kept = append(kept, p)
				}
			}
			b.projects = kept
			w.WriteHeader(http.StatusNoContent)
		})
	})

	r.Route("/api/v1/sessions", func(r chi.Router) {
		r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			status := req.URL.Query().Get("status")
			userName := req.URL.Query().Get("user_name")
			out := []api.Session{}
			for _, sess := range b.sessions {
				if status != "" && string(sess.Status) != status {
					continue
				}
				if userName != "" && !strings.Contains(sess.UserName, userName) {
					continue
				}
				out = append(out, sess)
			}
			writeJSON(w, out)
		})
		r.Get("/project/{id}", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			id := chi.URLParam(req, "id")
			out := []api.Session{}
			for _, sess := range b.sessions {
				if sess.ProjectID == id {
					out = append(out, sess)
				}
			}
			writeJSON(w, out)
		})
		r.Get("/stats/logs-by-token", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, []map[string]any{
				{"session_id": "s-big", "user_name": "heavy", "token_used": 90000, "request_time": "2026-08-01T10:00:00"},
			})
		})
		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			kept := b.sessions[:0]
			for _, sess := range b.sessions {
				if sess.SessionID != id {
					kept = append(kept, sess)
				}
			}
			b.sessions = kept
			w.WriteHeader(http.StatusNoContent)
		})
		r.Get("/{id}/logs", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			id := chi.URLParam(req, "id")
			out := []api.SessionLog{}
			for _, l := range b.sessionLogs {
				if l.SessionID == id {
					out = append(out, l)
				}
			}
			writeJSON(w, out)
		})
		r.Delete("/{id}/logs/{seq}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	r.Route("/api/v1/models", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			if b.failModels {
				w.WriteHeader(http.StatusInternalServerError)
				writeJSON(w, map[string]string{"detail": "backend unavailable"})
				return
			}
			writeJSON(w, b.models)
		})
		r.Get("/stats/q10", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, []map[string]any{
				{"model_id": "idle-1"}, {"model_id": "idle-2"},
			})
		})
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var in api.CreateModelRequest
			json.NewDecoder(req.Body).Decode(&in)
			b.mu.Lock()
			b.models = append(b.models, api.Model{
				ModelID:   uuid.NewString(),
				ModelName: in.ModelName,
				ModelType: in.ModelType,
			})
			b.mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]int{"result": 1})
		})
		r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, map[string]int{"result": 1})
		})
		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			kept := b.models[:0]
			for _, m := range b.models {
				if m.ModelID != id {
					kept = append(kept, m)
				}
			}
			b.models = kept
			w.WriteHeader(http.StatusNoContent)
		})
	})

	r.Route("/api/v1/deployments", func(r chi.Router) {
		r.Get("/model/{id}", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			id := chi.URLParam(req, "id")
			out := []api.Deployment{}
			for _, d := range b.deployments {
				if d.ModelID == id {
					out = append(out, d)
				}
			}
			writeJSON(w, out)
		})
		r.Get("/stats/q1/status-count", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, []map[string]any{{"status": "활성", "count": 6}, {"status": "오류", "count": 1}})
		})
		r.Get("/stats/q9", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, []map[string]any{{"environment": "프로덕션", "avg_gpu": 3.5, "deployment_count": 4}})
		})
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var in api.CreateDeploymentRequest
			json.NewDecoder(req.Body).Decode(&in)
			b.mu.Lock()
			b.deployments = append(b.deployments, api.Deployment{
				DeploymentID: uuid.NewString(),
				ServerName:   in.ServerName,
				GPUCount:     in.GPUCount,
				Environment:  in.Environment,
				Status:       in.Status,
				ModelID:      in.ModelID,
				DatasetID:    in.DatasetID,
			})
			b.mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]int{"result": 1})
		})
		r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, map[string]int{"result": 1})
		})
		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	r.Route("/api/v1/datasets", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			writeJSON(w, b.datasets)
		})
		r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			lt := req.URL.Query().Get("learning_type")
			out := []api.Dataset{}
			for _, d := range b.datasets {
				if lt == "" || string(d.LearningType) == lt {
					out = append(out, d)
				}
			}
			writeJSON(w, out)
		})
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var in api.CreateDatasetRequest
			json.NewDecoder(req.Body).Decode(&in)
			b.mu.Lock()
			b.datasets = append(b.datasets, api.Dataset{
				DatasetID:    uuid.NewString(),
				DatasetName:  in.DatasetName,
				LearningType: in.LearningType,
				Description:  in.Description,
				S3Path:       in.S3Path,
			})
			b.mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]int{"result": 1})
		})
		r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, map[string]int{"result": 1})
		})
		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			kept := b.datasets[:0]
			for _, d := range b.datasets {
				if d.DatasetID != id {
					kept = append(kept, d)
				}
			}
			b.datasets = kept
			w.WriteHeader(http.StatusNoContent)
		})
	})

	r.Route("/api/v1/prompt-templates", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			writeJSON(w, b.templates)
		})
		r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			name := req.URL.Query().Get("template_name")
			out := []api.PromptTemplate{}
			for _, t := range b.templates {
				if name == "" || strings.Contains(t.TemplateName, name) {
					out = append(out, t)
				}
			}
			writeJSON(w, out)
		})
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var in api.CreateTemplateRequest
			json.NewDecoder(req.Body).Decode(&in)
			b.mu.Lock()
			b.templates = append(b.templates, api.PromptTemplate{
				TemplateID:    uuid.NewString(),
				TemplateName:  in.TemplateName,
				PromptS3Path:  in.PromptS3Path,
				Description:   in.Description,
				TaskCategory:  in.TaskCategory,
				Variables:     in.Variables,
				Version:       in.Version,
				CreatorUserID: in.CreatorUserID,
			})
			b.mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, map[string]int{"result": 1})
		})
		r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			kept := b.templates[:0]
			for _, t := range b.templates {
				if t.TemplateID != id {
					kept = append(kept, t)
				}
			}
			b.templates = kept
			w.WriteHeader(http.StatusNoContent)
		})
	})

	return r
}

// newTestStore wires a store to a fresh fake backend through the recording
// transport.
func newTestStore(t *testing.T, b *backend) (*Store, *httpclient.TestClient) {
	t.Helper()
	client := httpclient.NewTestClient(testConfig{}, b.router())
	return New(client, zerolog.Nop()), client
}

// failingClient answers every request with a 500.
func failingClient() *httpclient.TestClient {
	return httpclient.NewTestClient(testConfig{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(w, map[string]string{"detail": "backend unavailable"})
	}))
}
