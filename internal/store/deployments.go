package store

import (
	"github.com/modelops/llmadmin/pkg/api"
)

// FetchDeploymentsByModel replaces the deployment collection with one
// model's deployments.
func (s *Store) FetchDeploymentsByModel(modelID string) error {
	var deployments []api.Deployment
	if err := s.fetchList("/api/v1/deployments/model/"+modelID, nil, &deployments); err != nil {
		s.log.Error().Err(err).Str("model_id", modelID).Msg("failed to fetch deployments")
		return err
	}

	s.mu.Lock()
	s.deployments = deployments
	s.mu.Unlock()
	return nil
}

// CreateDeployment creates a deployment and re-fetches the owning model's
// deployments.
func (s *Store) CreateDeployment(req api.CreateDeploymentRequest) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.CreateResource("/api/v1/deployments", data); err != nil {
		s.log.Error().Err(err).Msg("failed to create deployment")
		return err
	}
	return s.FetchDeploymentsByModel(req.ModelID)
}

// UpdateDeployment updates a deployment. The caller re-fetches the model's
// deployments when it needs the new state; the update itself does not.
func (s *Store) UpdateDeployment(deploymentID string, req api.UpdateDeploymentRequest) error {
	if err := api.ValidateRequest(req); err != nil {
		return err
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if _, err := s.client.UpdateResource("/api/v1/deployments/"+deploymentID, data, nil); err != nil {
		s.log.Error().Err(err).Str("deployment_id", deploymentID).Msg("failed to update deployment")
		return err
	}
	return nil
}

// DeleteDeployment deletes a deployment. Refreshing the listing is the
// caller's job, matching UpdateDeployment.
func (s *Store) DeleteDeployment(deploymentID string) error {
	if err := s.client.DeleteResource("/api/v1/deployments/" + deploymentID); err != nil {
		s.log.Error().Err(err).Str("deployment_id", deploymentID).Msg("failed to delete deployment")
		return err
	}
	return nil
}
