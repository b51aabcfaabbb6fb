package store

import (
	"github.com/modelops/llmadmin/pkg/api"
)

// TemplateFilter scopes a prompt template search. A zero filter uses the
// plain listing endpoint; any set field switches to /search.
type TemplateFilter struct {
	Name        string
	CreatorName string
}

func (f TemplateFilter) empty() bool {
	return f.Name == "" && f.CreatorName == ""
}

func (f TemplateFilter) queryParams() map[string]string {
	params := map[string]string{}
	if f.Name != "" {
		params["template_name"] = f.Name
	}
	if f.CreatorName != "" {
		params["creator_user_name"] = f.CreatorName
	}
	return params
}

// FetchTemplates replaces the template collection with the filtered
// listing.
func (s *Store) FetchTemplates(filter TemplateFilter) error {
	path := "/api/v1/prompt-templates/"
	if !filter.empty() {
		path = "/api/v1/prompt-templates/search"
	}

	var templates []api.PromptTemplate
	if err := s.fetchList(path, filter.queryParams(), &templates); err != nil {
		s.log.Error().Err(err).Msg("failed to fetch templates")
		return err
	}

	s.mu.Lock()
	s.templates = templates
	s.mu.Unlock()
	return nil
}

// CreateTemplate registers a prompt template and re-fetches the unfiltered
// collection.
func (s *Store) CreateTemplate(req api.CreateTemplateRequest) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.CreateResource("/api/v1/prompt-templates/", data); err != nil {
		s.log.Error().Err(err).Msg("failed to create template")
		return err
	}
	return s.FetchTemplates(TemplateFilter{})
}

// DeleteTemplate deletes a prompt template and re-fetches the unfiltered
// collection.
func (s *Store) DeleteTemplate(templateID string) error {
	if err := s.client.DeleteResource("/api/v1/prompt-templates/" + templateID); err != nil {
		s.log.Error().Err(err).Str("template_id", templateID).Msg("failed to delete template")
		return err
	}
	return s.FetchTemplates(TemplateFilter{})
}
