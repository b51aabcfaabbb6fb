package store

import (
	"github.com/modelops/llmadmin/pkg/api"
)

// FetchModels replaces the model collection.
func (s *Store) FetchModels() error {
	var models []api.Model
	if err := s.fetchList("/api/v1/models/", nil, &models); err != nil {
		s.log.Error().Err(err).Msg("failed to fetch models")
		return err
	}

	s.mu.Lock()
	s.models = models
	s.mu.Unlock()
	return nil
}

// CreateModel registers a model and re-fetches the collection.
func (s *Store) CreateModel(req api.CreateModelRequest) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.CreateResource("/api/v1/models/", data); err != nil {
		s.log.Error().Err(err).Msg("failed to create model")
		return err
	}
	return s.FetchModels()
}

// UpdateModel updates a model and re-fetches the collection.
func (s *Store) UpdateModel(modelID string, req api.UpdateModelRequest) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.UpdateResource("/api/v1/models/"+modelID, data, nil); err != nil {
		s.log.Error().Err(err).Str("model_id", modelID).Msg("failed to update model")
		return err
	}
	return s.FetchModels()
}

// DeleteModel deletes a model and re-fetches the collection.
func (s *Store) DeleteModel(modelID string) error {
	if err := s.client.DeleteResource("/api/v1/models/" + modelID); err != nil {
		s.log.Error().Err(err).Str("model_id", modelID).Msg("failed to delete model")
		return err
	}
	return s.FetchModels()
}
