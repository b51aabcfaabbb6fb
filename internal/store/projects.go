package store

import (
	"github.com/modelops/llmadmin/pkg/api"
)

// ProjectFilter scopes a project search. An entirely zero filter uses the
// plain listing endpoint; any set field switches to /search.
type ProjectFilter struct {
	Name           string
	CreatorName    string
	DepartmentName string
}

func (f ProjectFilter) empty() bool {
	return f.Name == "" && f.CreatorName == "" && f.DepartmentName == ""
}

func (f ProjectFilter) queryParams() map[string]string {
	params := map[string]string{}
	if f.Name != "" {
		params["project_name"] = f.Name
	}
	if f.CreatorName != "" {
		params["creator_user_name"] = f.CreatorName
	}
	if f.DepartmentName != "" {
		params["department_name"] = f.DepartmentName
	}
	return params
}

// FetchProjects replaces the project collection with the filtered listing.
func (s *Store) FetchProjects(filter ProjectFilter) error {
	path := "/api/v1/projects/"
	if !filter.empty() {
		path = "/api/v1/projects/search"
	}

	var records []api.ProjectRecord
	if err := s.fetchList(path, filter.queryParams(), &records); err != nil {
		s.log.Error().Err(err).Msg("failed to fetch projects")
		return err
	}

	projects := make([]api.Project, 0, len(records))
	for _, r := range records {
		projects = append(projects, r.ToProject())
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	return nil
}

// CreateProject creates a project and re-fetches the unfiltered
// collection.
func (s *Store) CreateProject(req api.CreateProjectRequest) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.CreateResource("/api/v1/projects/", data); err != nil {
		s.log.Error().Err(err).Msg("failed to create project")
		return err
	}
	return s.FetchProjects(ProjectFilter{})
}

// UpdateProject renames or redescribes a project and re-fetches the
// unfiltered collection. Creator and department are immutable.
func (s *Store) UpdateProject(id string, req api.UpdateProjectRequest) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.UpdateResource("/api/v1/projects/"+id, data, nil); err != nil {
		s.log.Error().Err(err).Str("project_id", id).Msg("failed to update project")
		return err
	}
	return s.FetchProjects(ProjectFilter{})
}

// DeleteProject deletes a project and re-fetches the unfiltered
// collection.
func (s *Store) DeleteProject(id string) error {
	if err := s.client.DeleteResource("/api/v1/projects/" + id); err != nil {
		s.log.Error().Err(err).Str("project_id", id).Msg("failed to delete project")
		return err
	}
	return s.FetchProjects(ProjectFilter{})
}
