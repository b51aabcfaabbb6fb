package api

// Dashboard aggregate rows. Each slice mirrors one backend stats endpoint;
// the full DashboardStats object is rebuilt from scratch on every dashboard
// visit and is never persisted.

// DeployStatusCount is one row of the deployment status breakdown.
type DeployStatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// GPUUsage is the average GPU allocation per environment tier.
type GPUUsage struct {
	Environment     string  `json:"environment"`
	AvgGPU          float64 `json:"avg_gpu"`
	DeploymentCount int     `json:"deployment_count"`
}

// RoleCount is one row of the user role distribution.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// DeptProjectCount is the number of projects per department.
type DeptProjectCount struct {
	DepartmentName string `json:"department_name"`
	ProjectCount   int    `json:"project_count"`
}

// Stakeholder is a user surfaced by the role-and-managers panel. The
// stats endpoint supplies the ids; name, role, and department are filled
// in client-side from the user collection.
type Stakeholder struct {
	UserID         string `json:"user_id"`
	UserName       string `json:"user_name,omitempty"`
	Role           string `json:"role,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
}

// HighCostSession is one of the top sessions ranked by token usage.
type HighCostSession struct {
	SessionID   string `json:"session_id"`
	UserName    string `json:"user_name,omitempty"`
	TokenUsed   int    `json:"token_used"`
	RequestTime string `json:"request_time"`
}

// PowerUser is a user whose session count meets the dashboard threshold.
type PowerUser struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	SessionCount int    `json:"session_count"`
}

// LiveIssue is a user with at least one session in an error or stopped
// state. Status records which of the two sets the user came from; when a
// user appears in both, the error tag wins.
type LiveIssue struct {
	UserID         string        `json:"user_id"`
	UserName       string        `json:"user_name"`
	DepartmentName string        `json:"department_name,omitempty"`
	Status         SessionStatus `json:"status"`
}

// DashboardStats is the full dashboard aggregate, assembled from the
// parallel stats calls plus the client-side live-issue merge.
type DashboardStats struct {
	DeploymentStatus []DeployStatusCount
	GPUUsage         []GPUUsage
	IdleModelsCount  int
	RoleDistribution []RoleCount
	ProjectsByDept   []DeptProjectCount
	Stakeholders     []Stakeholder
	HighCostSessions []HighCostSession
	PowerUsers       []PowerUser
	LiveIssues       []LiveIssue
}
