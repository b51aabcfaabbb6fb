package api

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateRequest runs struct validation on a mutation payload before any
// network call is made. It is the required-field gate every form submit
// passes through.
func ValidateRequest(req any) error {
	return validate.Struct(req)
}

// CreateUserRequest is the POST body for a new user. New users are always
// created active; is_active only appears on update.
type CreateUserRequest struct {
	UserName     string `json:"user_name" validate:"required"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	Role         string `json:"role" validate:"required"`
	DepartmentID string `json:"department_id,omitempty"`
}

// UpdateUserRequest is the PUT body for an existing user. IsActive carries
// the wire form "Y"/"N".
type UpdateUserRequest struct {
	UserName     string `json:"user_name" validate:"required"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	Role         string `json:"role" validate:"required"`
	IsActive     string `json:"is_active" validate:"required,oneof=Y N"`
	DepartmentID string `json:"department_id,omitempty"`
}

// CreateDepartmentRequest is the POST body for a new department.
type CreateDepartmentRequest struct {
	DepartmentName string `json:"department_name" validate:"required"`
}

// UpdateDepartmentRequest is the PUT body for a department. ManagerUserID
// is optional; the dedicated manager endpoint is the usual path for it.
type UpdateDepartmentRequest struct {
	DepartmentName string `json:"department_name" validate:"required"`
	ManagerUserID  string `json:"manager_user_id,omitempty"`
}

// CreateProjectRequest is the POST body for a new project.
type CreateProjectRequest struct {
	ProjectName   string `json:"project_name" validate:"required"`
	Description   string `json:"description,omitempty"`
	CreatorUserID string `json:"creator_user_id" validate:"required"`
	DepartmentID  string `json:"department_id" validate:"required"`
}

// UpdateProjectRequest is the PUT body for a project. Creator and
// department are fixed at creation time.
type UpdateProjectRequest struct {
	ProjectName string `json:"project_name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// CreateModelRequest is the POST body for a new model.
type CreateModelRequest struct {
	ModelName string `json:"model_name" validate:"required"`
	ModelType string `json:"model_type" validate:"required"`
}

// UpdateModelRequest is the PUT body for a model.
type UpdateModelRequest struct {
	ModelName string `json:"model_name" validate:"required"`
	ModelType string `json:"model_type" validate:"required"`
}

// CreateDeploymentRequest is the POST body for a new deployment.
type CreateDeploymentRequest struct {
	ServerName  string            `json:"server_name" validate:"required"`
	GPUCount    int               `json:"gpu_count" validate:"required,min=1"`
	Environment DeployEnvironment `json:"environment" validate:"required"`
	Status      DeployStatus      `json:"status" validate:"required"`
	ModelID     string            `json:"model_id" validate:"required"`
	DatasetID   string            `json:"dataset_id,omitempty"`
}

// UpdateDeploymentRequest is the PUT body for a deployment.
type UpdateDeploymentRequest struct {
	ServerName  string            `json:"server_name" validate:"required"`
	GPUCount    int               `json:"gpu_count" validate:"required,min=1"`
	Environment DeployEnvironment `json:"environment" validate:"required"`
	Status      DeployStatus      `json:"status" validate:"required"`
	DatasetID   string            `json:"dataset_id,omitempty"`
}

// CreateDatasetRequest is the POST body for a new dataset.
type CreateDatasetRequest struct {
	DatasetName  string       `json:"dataset_name,omitempty"`
	LearningType LearningType `json:"learning_type" validate:"required"`
	Description  string       `json:"description,omitempty"`
	S3Path       string       `json:"s3_path" validate:"required"`
}

// UpdateDatasetRequest is the PUT body for a dataset.
type UpdateDatasetRequest struct {
	LearningType LearningType `json:"learning_type" validate:"required"`
	Description  string       `json:"description,omitempty"`
	S3Path       string       `json:"s3_path" validate:"required"`
}

// CreateTemplateRequest is the POST body for a new prompt template.
type CreateTemplateRequest struct {
	TemplateName  string       `json:"template_name" validate:"required"`
	PromptS3Path  string       `json:"prompt_s3_path" validate:"required"`
	Description   string       `json:"description,omitempty"`
	TaskCategory  TaskCategory `json:"task_category" validate:"required"`
	Variables     string       `json:"variables,omitempty"`
	Version       string       `json:"version" validate:"required"`
	CreatorUserID string       `json:"creator_user_id" validate:"required"`
}
