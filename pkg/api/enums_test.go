package api

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSessionStatus(t *testing.T) {
	tests := []struct {
		input       string
		expected    SessionStatus
		expectError bool
	}{
		{"진행중", SessionInProgress, false},
		{"완료", SessionCompleted, false},
		{"오류", SessionError, false},
		{"중단", SessionStopped, false},
		{"done", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSessionStatus(tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownEnumValue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEnumJSONRoundTrip(t *testing.T) {
	var s Session
	raw := `{"session_id":"s1","session_type":"프로덕션","status":"진행중","user_id":"u1","start_time":"2026-08-01T10:00:00"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Equal(t, SessionProduction, s.SessionType)
	assert.Equal(t, SessionInProgress, s.Status)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"session_type":"프로덕션"`)
	assert.Contains(t, string(out), `"status":"진행중"`)
}

func TestEnumDecodeRejectsUnknownValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		into any
	}{
		{"session status", `{"session_id":"s1","session_type":"개발","status":"??","user_id":"u1","start_time":"t"}`, &Session{}},
		{"deployment environment", `{"deployment_id":"d1","server_name":"n","gpu_count":1,"environment":"prod","status":"활성","model_id":"m1"}`, &Deployment{}},
		{"learning type", `{"dataset_id":"ds1","learning_type":"RLHF","s3_path":"s3://x"}`, &Dataset{}},
		{"task category", `{"template_id":"t1","template_name":"x","prompt_s3_path":"s3://p","task_category":"기타","version":"1","creator_user_id":"u1","usage_count":0}`, &PromptTemplate{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.raw), tt.into)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownEnumValue))
		})
	}
}

func TestParseDeployEnums(t *testing.T) {
	env, err := ParseDeployEnvironment("스테이징")
	require.NoError(t, err)
	assert.Equal(t, EnvStaging, env)

	_, err = ParseDeployEnvironment("qa")
	assert.True(t, errors.Is(err, ErrUnknownEnumValue))

	st, err := ParseDeployStatus("유지보수")
	require.NoError(t, err)
	assert.Equal(t, DeployMaintenance, st)

	_, err = ParseDeployStatus("중지")
	assert.True(t, errors.Is(err, ErrUnknownEnumValue))
}

func TestParseLearningTypeAndTaskCategory(t *testing.T) {
	lt, err := ParseLearningType("강화학습")
	require.NoError(t, err)
	assert.Equal(t, LearningReinforcement, lt)

	_, err = ParseLearningType("지도학습")
	assert.True(t, errors.Is(err, ErrUnknownEnumValue))

	tc, err := ParseTaskCategory("번역")
	require.NoError(t, err)
	assert.Equal(t, TaskTranslation, tc)

	_, err = ParseTaskCategory("검색")
	assert.True(t, errors.Is(err, ErrUnknownEnumValue))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("ML Engineer"))
	assert.True(t, ValidRole("SRE"))
	assert.False(t, ValidRole("Wizard"))
	assert.False(t, ValidRole(""))
	assert.Len(t, Roles, 23)
}
