package store

import (
	"sync"

	"github.com/tidwall/sjson"

	"github.com/modelops/llmadmin/pkg/api"
)

// FetchDepartments fetches departments and projects in parallel, then
// joins each department with the subset of projects whose department_id
// matches. The join is recomputed in full on every call; a project whose
// department_id references no known department simply appears in no list.
func (s *Store) FetchDepartments() error {
	var (
		wg       sync.WaitGroup
		deptRecs []api.DepartmentRecord
		projRecs []api.ProjectRecord
		deptErr  error
		projErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		deptErr = s.fetchList("/api/v1/departments/", nil, &deptRecs)
	}()
	go func() {
		defer wg.Done()
		projErr = s.fetchList("/api/v1/projects/", nil, &projRecs)
	}()
	wg.Wait()

	if deptErr != nil {
		s.log.Error().Err(deptErr).Msg("failed to fetch departments")
		return deptErr
	}
	if projErr != nil {
		s.log.Error().Err(projErr).Msg("failed to fetch projects for department join")
		return projErr
	}

	departments := make([]api.Department, 0, len(deptRecs))
	for _, d := range deptRecs {
		manager := d.ManagerName
		if manager == "" {
			manager = "Unassigned"
		}
		dept := api.Department{
			ID:      d.DepartmentID,
			Name:    d.DepartmentName,
			Manager: manager,
		}
		for _, p := range projRecs {
			if p.DepartmentID == d.DepartmentID {
				dept.Projects = append(dept.Projects, p.ToProject())
			}
		}
		departments = append(departments, dept)
	}

	s.mu.Lock()
	s.departments = departments
	s.mu.Unlock()
	return nil
}

// CreateDepartment creates a department and re-fetches the collection.
func (s *Store) CreateDepartment(req api.CreateDepartmentRequest) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.CreateResource("/api/v1/departments/", data); err != nil {
		s.log.Error().Err(err).Msg("failed to create department")
		return err
	}
	return s.FetchDepartments()
}

// UpdateDepartment renames a department, optionally reassigning its
// manager in the same call, then re-fetches the collection.
func (s *Store) UpdateDepartment(id, name, managerUserID string) error {
	body, err := sjson.SetBytes([]byte(`{}`), "department_name", name)
	if err != nil {
		return err
	}
	if managerUserID != "" {
		body, err = sjson.SetBytes(body, "manager_user_id", managerUserID)
		if err != nil {
			return err
		}
	}
	if _, err := s.client.UpdateResource("/api/v1/departments/"+id, body, nil); err != nil {
		s.log.Error().Err(err).Str("department_id", id).Msg("failed to update department")
		return err
	}
	return s.FetchDepartments()
}

// DeleteDepartment deletes a department and re-fetches the collection.
func (s *Store) DeleteDepartment(id string) error {
	if err := s.client.DeleteResource("/api/v1/departments/" + id); err != nil {
		s.log.Error().Err(err).Str("department_id", id).Msg("failed to delete department")
		return err
	}
	return s.FetchDepartments()
}

// AssignDepartmentManager designates a department's manager through the
// dedicated endpoint. Unlike every other action, a 400 from this endpoint
// carries a message the caller is expected to show the operator, so the
// error is returned without being re-fetched away.
func (s *Store) AssignDepartmentManager(departmentID, managerUserID string) error {
	_, err := s.client.UpdateResource(
		"/api/v1/departments/"+departmentID+"/manager",
		nil,
		map[string]string{"manager_user_id": managerUserID},
	)
	if err != nil {
		s.log.Error().Err(err).Str("department_id", departmentID).Msg("failed to assign department manager")
		return err
	}
	return s.FetchDepartments()
}
