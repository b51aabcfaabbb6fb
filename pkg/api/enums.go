package api

import (
	"github.com/modelops/llmadmin/internal/common/apperrors"
)

// ErrUnknownEnumValue is returned when a wire string does not belong to the
// value set of the enum it is decoded into. The backend exchanges these
// labels verbatim, so the client rejects anything outside the known set
// instead of carrying arbitrary strings.
var ErrUnknownEnumValue = apperrors.New("unknown enum value").SetStatusCode(422)

// SessionStatus is the lifecycle state of an LLM usage session.
type SessionStatus string

const (
	SessionInProgress SessionStatus = "진행중"
	SessionCompleted  SessionStatus = "완료"
	SessionError      SessionStatus = "오류"
	SessionStopped    SessionStatus = "중단"
)

var sessionStatusValues = map[SessionStatus]bool{
	SessionInProgress: true,
	SessionCompleted:  true,
	SessionError:      true,
	SessionStopped:    true,
}

func ParseSessionStatus(s string) (SessionStatus, error) {
	v := SessionStatus(s)
	if !sessionStatusValues[v] {
		return "", ErrUnknownEnumValue.Msg("session status: " + s)
	}
	return v, nil
}

func (s *SessionStatus) UnmarshalJSON(data []byte) error {
	v, err := ParseSessionStatus(unquote(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SessionType classifies what a session was opened for.
type SessionType string

const (
	SessionDevelopment  SessionType = "개발"
	SessionProduction   SessionType = "프로덕션"
	SessionTest         SessionType = "테스트"
	SessionExperimental SessionType = "실험"
)

var sessionTypeValues = map[SessionType]bool{
	SessionDevelopment:  true,
	SessionProduction:   true,
	SessionTest:         true,
	SessionExperimental: true,
}

func ParseSessionType(s string) (SessionType, error) {
	v := SessionType(s)
	if !sessionTypeValues[v] {
		return "", ErrUnknownEnumValue.Msg("session type: " + s)
	}
	return v, nil
}

func (s *SessionType) UnmarshalJSON(data []byte) error {
	v, err := ParseSessionType(unquote(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DeployEnvironment is the tier a deployment serves.
type DeployEnvironment string

const (
	EnvDevelopment DeployEnvironment = "개발"
	EnvStaging     DeployEnvironment = "스테이징"
	EnvProduction  DeployEnvironment = "프로덕션"
	EnvTest        DeployEnvironment = "테스트"
)

var deployEnvironmentValues = map[DeployEnvironment]bool{
	EnvDevelopment: true,
	EnvStaging:     true,
	EnvProduction:  true,
	EnvTest:        true,
}

func ParseDeployEnvironment(s string) (DeployEnvironment, error) {
	v := DeployEnvironment(s)
	if !deployEnvironmentValues[v] {
		return "", ErrUnknownEnumValue.Msg("deployment environment: " + s)
	}
	return v, nil
}

func (e *DeployEnvironment) UnmarshalJSON(data []byte) error {
	v, err := ParseDeployEnvironment(unquote(data))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// DeployStatus is the operational state of a deployment server.
type DeployStatus string

const (
	DeployActive      DeployStatus = "활성"
	DeployInactive    DeployStatus = "비활성"
	DeployError       DeployStatus = "오류"
	DeployMaintenance DeployStatus = "유지보수"
)

var deployStatusValues = map[DeployStatus]bool{
	DeployActive:      true,
	DeployInactive:    true,
	DeployError:       true,
	DeployMaintenance: true,
}

func ParseDeployStatus(s string) (DeployStatus, error) {
	v := DeployStatus(s)
	if !deployStatusValues[v] {
		return "", ErrUnknownEnumValue.Msg("deployment status: " + s)
	}
	return v, nil
}

func (s *DeployStatus) UnmarshalJSON(data []byte) error {
	v, err := ParseDeployStatus(unquote(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// LearningType describes how a dataset is used to produce a model.
type LearningType string

const (
	LearningFineTuning    LearningType = "파인튜닝"
	LearningPromptTuning  LearningType = "프롬프트학습"
	LearningTransfer      LearningType = "전이학습"
	LearningReinforcement LearningType = "강화학습"
)

var learningTypeValues = map[LearningType]bool{
	LearningFineTuning:    true,
	LearningPromptTuning:  true,
	LearningTransfer:      true,
	LearningReinforcement: true,
}

func ParseLearningType(s string) (LearningType, error) {
	v := LearningType(s)
	if !learningTypeValues[v] {
		return "", ErrUnknownEnumValue.Msg("learning type: " + s)
	}
	return v, nil
}

func (l *LearningType) UnmarshalJSON(data []byte) error {
	v, err := ParseLearningType(unquote(data))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// TaskCategory classifies what a prompt template is for.
type TaskCategory string

const (
	TaskQualityReview TaskCategory = "품질검토"
	TaskQA            TaskCategory = "질의응답"
	TaskDocumentation TaskCategory = "문서화"
	TaskCoding        TaskCategory = "코딩"
	TaskSummarization TaskCategory = "요약"
	TaskTranslation   TaskCategory = "번역"
	TaskGeneration    TaskCategory = "생성"
	TaskAnalysis      TaskCategory = "분석"
)

var taskCategoryValues = map[TaskCategory]bool{
	TaskQualityReview: true,
	TaskQA:            true,
	TaskDocumentation: true,
	TaskCoding:        true,
	TaskSummarization: true,
	TaskTranslation:   true,
	TaskGeneration:    true,
	TaskAnalysis:      true,
}

func ParseTaskCategory(s string) (TaskCategory, error) {
	v := TaskCategory(s)
	if !taskCategoryValues[v] {
		return "", ErrUnknownEnumValue.Msg("task category: " + s)
	}
	return v, nil
}

func (t *TaskCategory) UnmarshalJSON(data []byte) error {
	v, err := ParseTaskCategory(unquote(data))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Roles recognised by the admin console. The backend stores these as plain
// strings; the console offers and validates against this fixed set.
var Roles = []string{
	"Business Analyst",
	"Customer Success",
	"Data Analyst",
	"Data Scientist",
	"DevOps Engineer",
	"Engineer",
	"Finance Analyst",
	"HR Specialist",
	"Intern",
	"ML Engineer",
	"MLOps Engineer",
	"Operations Manager",
	"Product Manager",
	"QA Engineer",
	"Quality Analyst",
	"Research Scientist",
	"SRE",
	"Security Analyst",
	"Security Engineer",
	"Senior Engineer",
	"Support Specialist",
	"Team Leader",
	"UX Designer",
}

var roleValues = func() map[string]bool {
	m := make(map[string]bool, len(Roles))
	for _, r := range Roles {
		m[r] = true
	}
	return m
}()

// ValidRole reports whether r is one of the known job-title roles.
func ValidRole(r string) bool {
	return roleValues[r]
}

// unquote strips the surrounding quotes of a JSON string literal. Enum
// labels never contain escapes, so full JSON unescaping is not needed.
func unquote(data []byte) string {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
