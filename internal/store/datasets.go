package store

import (
	"github.com/modelops/llmadmin/pkg/api"
)

// DatasetFilter scopes a dataset search. A zero filter uses the plain
// listing endpoint; any set field switches to /search.
type DatasetFilter struct {
	Name         string
	LearningType api.LearningType
}

func (f DatasetFilter) empty() bool {
	return f.Name == "" && f.LearningType == ""
}

func (f DatasetFilter) queryParams() map[string]string {
	params := map[string]string{}
	if f.Name != "" {
		params["dataset_name"] = f.Name
	}
	if f.LearningType != "" {
		params["learning_type"] = string(f.LearningType)
	}
	return params
}

// FetchDatasets replaces the dataset collection with the filtered listing.
func (s *Store) FetchDatasets(filter DatasetFilter) error {
	path := "/api/v1/datasets/"
	if !filter.empty() {
		path = "/api/v1/datasets/search"
	}

	var datasets []api.Dataset
	if err := s.fetchList(path, filter.queryParams(), &datasets); err != nil {
		s.log.Error().Err(err).Msg("failed to fetch datasets")
		return err
	}

	s.mu.Lock()
	s.datasets = datasets
	s.mu.Unlock()
	return nil
}

// CreateDataset registers a dataset and re-fetches the unfiltered
// collection, so the new record's id is present in the refreshed listing.
func (s *Store) CreateDataset(req api.CreateDatasetRequest) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.CreateResource("/api/v1/datasets/", data); err != nil {
		s.log.Error().Err(err).Msg("failed to create dataset")
		return err
	}
	return s.FetchDatasets(DatasetFilter{})
}

// UpdateDataset updates a dataset and re-fetches the unfiltered
// collection.
func (s *Store) UpdateDataset(datasetID string, req api.UpdateDatasetRequest) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.UpdateResource("/api/v1/datasets/"+datasetID, data, nil); err != nil {
		s.log.Error().Err(err).Str("dataset_id", datasetID).Msg("failed to update dataset")
		return err
	}
	return s.FetchDatasets(DatasetFilter{})
}

// DeleteDataset deletes a dataset and re-fetches the unfiltered
// collection.
func (s *Store) DeleteDataset(datasetID string) error {
	if err := s.client.DeleteResource("/api/v1/datasets/" + datasetID); err != nil {
		s.log.Error().Err(err).Str("dataset_id", datasetID).Msg("failed to delete dataset")
		return err
	}
	return s.FetchDatasets(DatasetFilter{})
}
