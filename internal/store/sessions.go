package store

import (
	"strconv"

	"github.com/modelops/llmadmin/pkg/api"
)

// SessionFilter scopes a session search.
type SessionFilter struct {
	UserName    string
	ProjectName string
	Type        api.SessionType
	Status      api.SessionStatus
}

func (f SessionFilter) queryParams() map[string]string {
	params := map[string]string{}
	if f.UserName != "" {
		params["user_name"] = f.UserName
	}
	if f.ProjectName != "" {
		params["project_name"] = f.ProjectName
	}
	if f.Type != "" {
		params["session_type"] = string(f.Type)
	}
	if f.Status != "" {
		params["status"] = string(f.Status)
	}
	return params
}

// FetchSessions replaces the session collection with the search result.
func (s *Store) FetchSessions(filter SessionFilter) error {
	var sessions []api.Session
	if err := s.fetchList("/api/v1/sessions/search", filter.queryParams(), &sessions); err != nil {
		s.log.Error().Err(err).Msg("failed to fetch sessions")
		return err
	}

	s.mu.Lock()
	s.sessions = sessions
	s.mu.Unlock()
	return nil
}

// FetchSessionsByProject replaces the session collection with one
// project's sessions.
func (s *Store) FetchSessionsByProject(projectID string) error {
	var sessions []api.Session
	if err := s.fetchList("/api/v1/sessions/project/"+projectID, nil, &sessions); err != nil {
		s.log.Error().Err(err).Str("project_id", projectID).Msg("failed to fetch project sessions")
		return err
	}

	s.mu.Lock()
	s.sessions = sessions
	s.mu.Unlock()
	return nil
}

// DeleteSession deletes a session, then removes it from the in-memory
// collection instead of re-fetching. A filtered listing therefore stays
// filtered after the delete. The trade-off: if a concurrent writer also
// touched the collection, the local copy can diverge from the server
// until the next fetch.
func (s *Store) DeleteSession(sessionID string) error {
	if err := s.client.DeleteResource("/api/v1/sessions/" + sessionID); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("failed to delete session")
		return err
	}

	s.mu.Lock()
	kept := s.sessions[:0:0]
	for _, sess := range s.sessions {
		if sess.SessionID != sessionID {
			kept = append(kept, sess)
		}
	}
	s.sessions = kept
	s.mu.Unlock()
	return nil
}

// FetchSessionLogs replaces the log list with one session's logs.
func (s *Store) FetchSessionLogs(sessionID string) error {
	var logs []api.SessionLog
	if err := s.fetchList("/api/v1/sessions/"+sessionID+"/logs", nil, &logs); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("failed to fetch session logs")
		return err
	}

	s.mu.Lock()
	s.sessionLogs = logs
	s.mu.Unlock()
	return nil
}

// DeleteSessionLog deletes one log entry by its (session_id, log_sequence)
// key, then removes exactly that entry from the in-memory list without a
// re-fetch. Entries of the same session with a different sequence are
// untouched.
func (s *Store) DeleteSessionLog(sessionID string, logSequence int) error {
	if err := s.client.DeleteResource(sessionLogPath(sessionID, logSequence)); err != nil {
		s.log.Error().Err(err).
			Str("session_id", sessionID).
			Int("log_sequence", logSequence).
			Msg("failed to delete session log")
		return err
	}

	s.mu.Lock()
	kept := s.sessionLogs[:0:0]
	for _, l := range s.sessionLogs {
		if l.SessionID == sessionID && l.LogSequence == logSequence {
			continue
		}
		kept = append(kept, l)
	}
	s.sessionLogs = kept
	s.mu.Unlock()
	return nil
}

func sessionLogPath(sessionID string, logSequence int) string {
	return "/api/v1/sessions/" + sessionID + "/logs/" + strconv.Itoa(logSequence)
}
