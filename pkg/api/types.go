// Package api defines the wire types the admin console exchanges with the
// platform backend, the enum value sets it validates against, and the
// request payloads for every mutating operation.
package api

// User is the display form of a platform user. Wire records arrive as
// snake_case (see UserRecord) and are mapped at fetch time.
type User struct {
	ID             string
	Name           string
	Email          string
	Role           string
	IsActive       bool
	DepartmentID   string
	DepartmentName string
}

// UserRecord is the backend's wire shape for a user. is_active is the
// literal string "Y" or "N".
type UserRecord struct {
	UserID         string `json:"user_id"`
	UserName       string `json:"user_name"`
	UserEmail      string `json:"user_email"`
	Role           string `json:"role"`
	IsActive       string `json:"is_active"`
	DepartmentID   string `json:"department_id,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
}

// ToUser maps a wire record into display form.
func (r UserRecord) ToUser() User {
	return User{
		ID:             r.UserID,
		Name:           r.UserName,
		Email:          r.UserEmail,
		Role:           r.Role,
		IsActive:       r.IsActive == "Y",
		DepartmentID:   r.DepartmentID,
		DepartmentName: r.DepartmentName,
	}
}

// Department is the display form of a department. Projects is a read-only
// projection joined client-side from the project collection by department
// id; it is recomputed on every department fetch and never written back.
type Department struct {
	ID       string
	Name     string
	Manager  string
	Projects []Project
}

// DepartmentRecord is the backend's wire shape for a department.
type DepartmentRecord struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	ManagerName    string `json:"manager_name,omitempty"`
	ManagerUserID  string `json:"manager_user_id,omitempty"`
}

// Project is the display form of a project.
type Project struct {
	ID           string
	Name         string
	Description  string
	CreatorID    string
	DepartmentID string
	CreatedAt    string
}

// ProjectRecord is the backend's wire shape for a project.
type ProjectRecord struct {
	ProjectID     string `json:"project_id"`
	ProjectName   string `json:"project_name"`
	Description   string `json:"description,omitempty"`
	CreatorUserID string `json:"creator_user_id"`
	DepartmentID  string `json:"department_id"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// ToProject maps a wire record into display form.
func (r ProjectRecord) ToProject() Project {
	return Project{
		ID:           r.ProjectID,
		Name:         r.ProjectName,
		Description:  r.Description,
		CreatorID:    r.CreatorUserID,
		DepartmentID: r.DepartmentID,
		CreatedAt:    r.CreatedAt,
	}
}

// Session is one tracked interaction lifecycle between a user and a
// deployed model. Sessions keep their wire shape; the backend denormalises
// user_name and project_name for display.
type Session struct {
	SessionID   string        `json:"session_id"`
	SessionType SessionType   `json:"session_type"`
	Status      SessionStatus `json:"status"`
	UserID      string        `json:"user_id"`
	ProjectID   string        `json:"project_id,omitempty"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time,omitempty"`
	UserName    string        `json:"user_name,omitempty"`
	ProjectName string        `json:"project_name,omitempty"`
}

// SessionLog is one request/response exchange within a session, keyed by
// (session_id, log_sequence). It carries token accounting and a snapshot
// of the generation config used for the exchange.
type SessionLog struct {
	SessionID           string   `json:"session_id"`
	LogSequence         int      `json:"log_sequence"`
	RequestPromptS3Path string   `json:"request_prompt_s3_path"`
	ResponseS3Path      string   `json:"response_s3_path"`
	TokenUsed           int      `json:"token_used"`
	ConfigID            string   `json:"config_id,omitempty"`
	DeploymentID        string   `json:"deployment_id"`
	RequestTime         string   `json:"request_time"`
	ResponseTime        string   `json:"response_time"`
	ConfigMaxTokens     *int     `json:"config_max_tokens,omitempty"`
	ConfigTemperature   *float64 `json:"config_temperature,omitempty"`
	ConfigTopP          *float64 `json:"config_top_p,omitempty"`
	ConfigTopK          *int     `json:"config_top_k,omitempty"`
	DeploymentServer    string   `json:"deployment_server,omitempty"`
}

// Model is a registered base or tuned model.
type Model struct {
	ModelID   string `json:"model_id"`
	ModelName string `json:"model_name"`
	ModelType string `json:"model_type"`
}

// Deployment is a running instance of a model on a named server.
type Deployment struct {
	DeploymentID string            `json:"deployment_id"`
	ServerName   string            `json:"server_name"`
	GPUCount     int               `json:"gpu_count"`
	Environment  DeployEnvironment `json:"environment"`
	Status       DeployStatus      `json:"status"`
	ModelID      string            `json:"model_id"`
	DatasetID    string            `json:"dataset_id,omitempty"`
}

// Dataset is a training corpus stored in S3.
type Dataset struct {
	DatasetID    string       `json:"dataset_id"`
	DatasetName  string       `json:"dataset_name,omitempty"`
	LearningType LearningType `json:"learning_type"`
	Description  string       `json:"description,omitempty"`
	S3Path       string       `json:"s3_path"`
	CreatedAt    string       `json:"created_at,omitempty"`
}

// PromptTemplate is a reusable prompt stored in S3 with usage accounting.
type PromptTemplate struct {
	TemplateID      string       `json:"template_id"`
	TemplateName    string       `json:"template_name"`
	PromptS3Path    string       `json:"prompt_s3_path"`
	Description     string       `json:"description,omitempty"`
	TaskCategory    TaskCategory `json:"task_category"`
	Variables       string       `json:"variables,omitempty"`
	Version         string       `json:"version"`
	CreatorUserID   string       `json:"creator_user_id"`
	CreatorUserName string       `json:"creator_user_name,omitempty"`
	UsageCount      int          `json:"usage_count"`
	CreatedAt       string       `json:"created_at,omitempty"`
}
