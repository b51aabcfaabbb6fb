package store

import (
	"github.com/modelops/llmadmin/pkg/api"
)

// UserFilter scopes a user listing. A non-empty DepartmentID switches the
// request to the department-scoped endpoint; Name and Role become the
// user_name and role query parameters. The same filter doubles as the
// refresh parameters after a mutation so a filtered view does not snap
// back to the full collection.
type UserFilter struct {
	Name         string
	Role         string
	DepartmentID string
}

func (f UserFilter) path() string {
	if f.DepartmentID != "" {
		return "/api/v1/users/department/" + f.DepartmentID
	}
	return "/api/v1/users/"
}

func (f UserFilter) queryParams() map[string]string {
	params := map[string]string{}
	if f.Name != "" {
		params["user_name"] = f.Name
	}
	if f.Role != "" {
		params["role"] = f.Role
	}
	return params
}

// FetchUsers replaces the user collection with the filtered listing. On
// failure the previous collection is kept.
func (s *Store) FetchUsers(filter UserFilter) error {
	var records []api.UserRecord
	if err := s.fetchList(filter.path(), filter.queryParams(), &records); err != nil {
		s.log.Error().Err(err).Msg("failed to fetch users")
		return err
	}

	users := make([]api.User, 0, len(records))
	for _, r := range records {
		users = append(users, r.ToUser())
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

// FetchDepartmentUsers replaces the department member list. Unlike the
// other fetches this clears the list on failure, so a previously selected
// department's members do not linger under the wrong heading.
func (s *Store) FetchDepartmentUsers(departmentID string) error {
	var records []api.UserRecord
	err := s.fetchList("/api/v1/users/department/"+departmentID, nil, &records)
	if err != nil {
		s.log.Error().Err(err).Str("department_id", departmentID).Msg("failed to fetch department users")
		s.mu.Lock()
		s.departmentUsers = nil
		s.mu.Unlock()
		return err
	}

	users := make([]api.User, 0, len(records))
	for _, r := range records {
		users = append(users, r.ToUser())
	}

	s.mu.Lock()
	s.departmentUsers = users
	s.mu.Unlock()
	return nil
}

// CreateUser creates a user and re-fetches the collection with the given
// refresh filter.
func (s *Store) CreateUser(req api.CreateUserRequest, refresh UserFilter) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.CreateResource("/api/v1/users/", data); err != nil {
		s.log.Error().Err(err).Msg("failed to create user")
		return err
	}
	return s.FetchUsers(refresh)
}

// UpdateUser updates a user and re-fetches the collection with the given
// refresh filter.
func (s *Store) UpdateUser(id string, req api.UpdateUserRequest, refresh UserFilter) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.UpdateResource("/api/v1/users/"+id, data, nil); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return err
	}
	return s.FetchUsers(refresh)
}

// DeleteUser hard-deletes a user and re-fetches the collection with the
// given refresh filter. The backend does not cascade; sessions keep their
// user id.
func (s *Store) DeleteUser(id string, refresh UserFilter) error {
	if err := s.client.DeleteResource("/api/v1/users/" + id); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return err
	}
	return s.FetchUsers(refresh)
}
