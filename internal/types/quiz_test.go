package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizAnswers_UnmarshalJSON(t *testing.T) {
	var answers QuizAnswers
	err := json.Unmarshal([]byte(`{"1":"analytical","2":3,"4":null,"7":true,"10":{"x":1},"3":"impact"}`), &answers)
	require.NoError(t, err)

	assert.Equal(t, QuizAnswers{"1": "analytical", "2": "3", "3": "impact"}, answers)
}

func TestQuizAnswers_UnmarshalJSON_NotObject(t *testing.T) {
	var answers QuizAnswers
	err := json.Unmarshal([]byte(`["analytical"]`), &answers)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "answers must be a JSON object")
}

func TestQuizAnswers_Entries(t *testing.T) {
	answers := QuizAnswers{"10": "senior", "2": "remote", "abc": "x", "0": "zero", " 7 ": "technical", "01": "a", "1": "b"}

	entries := answers.Entries()

	ids := make([]int, 0, len(entries))
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.QuestionID)
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []int{1, 1, 2, 7, 10}, ids)
	assert.Equal(t, []string{"01", "1", "2", " 7 ", "10"}, keys)
}

func TestCareerProfile_JSONEncodesEmptyLists(t *testing.T) {
	data, err := json.Marshal(NewCareerProfile())
	require.NoError(t, err)

	assert.JSONEq(t, `{"interests":[],"skills":[],"workStyle":"","careerGoals":"","industry":"","experience":""}`, string(data))
}

func TestStructuredAnalysis_JSONEncodesEmptyLists(t *testing.T) {
	data, err := json.Marshal(NewStructuredAnalysis())
	require.NoError(t, err)

	assert.JSONEq(t, `{"summary":"","recommendations":[],"nextSteps":[]}`, string(data))
}
