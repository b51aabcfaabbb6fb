package store

import (
	"strconv"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/modelops/llmadmin/pkg/api"
)

// DefaultDashboardLimit caps the ranked dashboard lists (highest-token
// sessions, power users).
const DefaultDashboardLimit = 5

// issueUser is the wire shape of the with-sessions stats rows. The status
// tag is attached client-side from the query that produced the row.
type issueUser struct {
	UserID         string `json:"user_id"`
	UserName       string `json:"user_name"`
	DepartmentName string `json:"department_name,omitempty"`
}

// FetchDashboardStats rebuilds the full dashboard aggregate. Nine stats
// endpoints are queried concurrently and awaited together; the
// stopped-session user list is fetched afterwards, strictly sequential,
// since it only feeds the live-issue merge. Any failure in those calls
// leaves the previous aggregate in place. The stakeholder panel is then
// enriched from the user collection, fetching it first if empty; a
// stakeholder id with no matching local user drops out of the panel.
func (s *Store) FetchDashboardStats() error {
	var (
		wg            sync.WaitGroup
		deployStatus  []api.DeployStatusCount
		gpuUsage      []api.GPUUsage
		idleModelsRaw []byte
		roleDist      []api.RoleCount
		projByDept    []api.DeptProjectCount
		stakeholders  []api.Stakeholder
		highCost      []api.HighCostSession
		powerUsers    []api.PowerUser
		erroredUsers  []issueUser
		errs          = make([]error, 9)
	)

	limit := strconv.Itoa(DefaultDashboardLimit)

	calls := []func(){
		func() {
			errs[0] = s.fetchList("/api/v1/deployments/stats/q1/status-count", nil, &deployStatus)
		},
		func() {
			errs[1] = s.fetchList("/api/v1/deployments/stats/q9", nil, &gpuUsage)
		},
		func() {
			idleModelsRaw, errs[2] = s.client.ListResources("/api/v1/models/stats/q10", nil)
		},
		func() {
			errs[3] = s.fetchList("/api/v1/users/stats/role-distribution", nil, &roleDist)
		},
		func() {
			errs[4] = s.fetchList("/api/v1/projects/stats/by-department", nil, &projByDept)
		},
		func() {
			errs[5] = s.fetchList("/api/v1/users/stats/role-and-managers", nil, &stakeholders)
		},
		func() {
			errs[6] = s.fetchList("/api/v1/sessions/stats/logs-by-token", map[string]string{"limit": limit}, &highCost)
		},
		func() {
			errs[7] = s.fetchList("/api/v1/users/stats/min-sessions", map[string]string{"limit": limit}, &powerUsers)
		},
		func() {
			errs[8] = s.fetchList("/api/v1/users/stats/with-sessions",
				map[string]string{"session_status": string(api.SessionError)}, &erroredUsers)
		},
	}

	wg.Add(len(calls))
	for _, call := range calls {
		go func(f func()) {
			defer wg.Done()
			f()
		}(call)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.log.Error().Err(err).Msg("failed to fetch dashboard stats")
			return err
		}
	}

	var stoppedUsers []issueUser
	if err := s.fetchList("/api/v1/users/stats/with-sessions",
		map[string]string{"session_status": string(api.SessionStopped)}, &stoppedUsers); err != nil {
		s.log.Error().Err(err).Msg("failed to fetch stopped-session users")
		return err
	}

	stats := &api.DashboardStats{
		DeploymentStatus: deployStatus,
		GPUUsage:         gpuUsage,
		IdleModelsCount:  int(gjson.GetBytes(idleModelsRaw, "#").Int()),
		RoleDistribution: roleDist,
		ProjectsByDept:   projByDept,
		Stakeholders:     stakeholders,
		HighCostSessions: highCost,
		PowerUsers:       powerUsers,
		LiveIssues:       mergeLiveIssues(erroredUsers, stoppedUsers),
	}

	s.mu.Lock()
	s.dashboard = stats
	s.mu.Unlock()

	s.enrichStakeholders(stakeholders)
	return nil
}

// enrichStakeholders replaces the stored stakeholder panel with rows
// resolved against the user collection, fetching the collection first if
// it has not been loaded. A failed user fetch empties the panel rather
// than failing the dashboard, which is already stored by this point.
func (s *Store) enrichStakeholders(stakeholders []api.Stakeholder) {
	if len(s.Users()) == 0 {
		if err := s.FetchUsers(UserFilter{}); err != nil {
			s.log.Error().Err(err).Msg("failed to fetch users for stakeholder panel")
		}
	}

	ids := make(map[string]bool, len(stakeholders))
	for _, st := range stakeholders {
		ids[st.UserID] = true
	}

	enriched := make([]api.Stakeholder, 0, len(stakeholders))
	for _, u := range s.Users() {
		if ids[u.ID] {
			enriched = append(enriched, api.Stakeholder{
				UserID:         u.ID,
				UserName:       u.Name,
				Role:           u.Role,
				DepartmentName: u.DepartmentName,
			})
		}
	}

	s.mu.Lock()
	if s.dashboard != nil {
		s.dashboard.Stakeholders = enriched
	}
	s.mu.Unlock()
}

// mergeLiveIssues deduplicates the errored-session and stopped-session
// user sets by user id. A user present in both sets keeps the error tag:
// an errored session is the more urgent signal, so 오류 always wins over
// 중단. Errored users come first in the merged list, followed by users who
// only have stopped sessions.
func mergeLiveIssues(errored, stopped []issueUser) []api.LiveIssue {
	merged := make([]api.LiveIssue, 0, len(errored)+len(stopped))
	seen := make(map[string]bool, len(errored)+len(stopped))

	for _, u := range errored {
		if seen[u.UserID] {
			continue
		}
		seen[u.UserID] = true
		merged = append(merged, api.LiveIssue{
			UserID:         u.UserID,
			UserName:       u.UserName,
			DepartmentName: u.DepartmentName,
			Status:         api.SessionError,
		})
	}
	for _, u := range stopped {
		if seen[u.UserID] {
			continue
		}
		seen[u.UserID] = true
		merged = append(merged, api.LiveIssue{
			UserID:         u.UserID,
			UserName:       u.UserName,
			DepartmentName: u.DepartmentName,
			Status:         api.SessionStopped,
		})
	}
	return merged
}

// RefreshPowerUsers re-queries only the power-user ranking with a new
// session-count threshold, leaving the rest of the aggregate as is. This
// is the one partial-update path the dashboard has.
func (s *Store) RefreshPowerUsers(minSessions int) error {
	var powerUsers []api.PowerUser
	err := s.fetchList("/api/v1/users/stats/min-sessions", map[string]string{
		"min_sessions": strconv.Itoa(minSessions),
		"limit":        strconv.Itoa(DefaultDashboardLimit),
	}, &powerUsers)
	if err != nil {
		s.log.Error().Err(err).Int("min_sessions", minSessions).Msg("failed to refresh power users")
		return err
	}

	s.mu.Lock()
	if s.dashboard != nil {
		s.dashboard.PowerUsers = powerUsers
	}
	s.mu.Unlock()
	return nil
}
