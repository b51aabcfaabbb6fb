// Package store is the console's single source of truth for every
// server-backed collection. It exposes one method per logical operation;
// fetches replace the corresponding collection wholesale, and mutations
// never write state directly; only their mandated re-fetch (or, for
// sessions and session logs, a local removal) does. A failed fetch leaves
// the previous state untouched.
package store

import (
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/modelops/llmadmin/internal/common/httpclient"
	"github.com/modelops/llmadmin/pkg/api"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store owns all in-memory copies of server-backed entities. Views never
// hold independent state beyond transient form input; they read from the
// store and trigger its actions. The mutex guards collection replacement
// because the dashboard batch writes from several goroutines; there is no
// request sequencing, so if two fetches for the same collection overlap,
// the last response to land wins.
type Store struct {
	client httpclient.RESTClient
	log    zerolog.Logger

	mu              sync.Mutex
	users           []api.User
	departmentUsers []api.User
	departments     []api.Department
	projects        []api.Project
	sessions        []api.Session
	sessionLogs     []api.SessionLog
	models          []api.Model
	deployments     []api.Deployment
	datasets        []api.Dataset
	templates       []api.PromptTemplate
	dashboard       *api.DashboardStats
}

// New creates a store backed by the given transport.
func New(client httpclient.RESTClient, log zerolog.Logger) *Store {
	return &Store{
		client: client,
		log:    log,
	}
}

// Users returns the last-fetched user collection.
func (s *Store) Users() []api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users
}

// DepartmentUsers returns the members of the last-selected department.
func (s *Store) DepartmentUsers() []api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.departmentUsers
}

// Departments returns the last-fetched department collection with its
// joined project lists.
func (s *Store) Departments() []api.Department {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.departments
}

// Projects returns the last-fetched project collection.
func (s *Store) Projects() []api.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects
}

// Sessions returns the last-fetched session collection.
func (s *Store) Sessions() []api.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions
}

// SessionLogs returns the logs of the last-inspected session.
func (s *Store) SessionLogs() []api.SessionLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionLogs
}

// Models returns the last-fetched model collection.
func (s *Store) Models() []api.Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.models
}

// Deployments returns the deployments of the last-selected model.
func (s *Store) Deployments() []api.Deployment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deployments
}

// Datasets returns the last-fetched dataset collection.
func (s *Store) Datasets() []api.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.datasets
}

// Templates returns the last-fetched prompt template collection.
func (s *Store) Templates() []api.PromptTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.templates
}

// Dashboard returns the last-assembled dashboard aggregate, or nil if the
// dashboard has not been visited yet.
func (s *Store) Dashboard() *api.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

// fetchList issues a GET and decodes the response into out. The caller
// only replaces its collection when this returns nil, which is what keeps
// stale state intact on failure.
func (s *Store) fetchList(path string, params map[string]string, out any) error {
	body, err := s.client.ListResources(path, params)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
