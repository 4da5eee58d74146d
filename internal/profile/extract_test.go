package profile

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/career-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProfile_Empty(t *testing.T) {
	tests := []struct {
		name    string
		answers types.QuizAnswers
	}{
		{name: "nil", answers: nil},
		{name: "empty", answers: types.QuizAnswers{}},
		{name: "only unknown ids", answers: types.QuizAnswers{"5": "yes", "6": "team", "99": "x"}},
		{name: "non numeric keys", answers: types.QuizAnswers{"q1": "analytical", "": "creative", "-1": "technical"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractProfile(tt.answers)
			assert.Equal(t, types.NewCareerProfile(), got)
			assert.True(t, got.IsEmpty())
		})
	}
}

func TestExtractProfile_InterestsAndSkills(t *testing.T) {
	got := ExtractProfile(types.QuizAnswers{"1": "analytical", "7": "technical"})

	assert.Equal(t, []string{"Problem Solving", "Analysis"}, got.Interests)
	assert.Equal(t, []string{"Technical Skills", "Programming"}, got.Skills)
}

func TestExtractProfile_InterestTable(t *testing.T) {
	tests := map[string][]string{
		"analytical":      {"Problem Solving", "Analysis"},
		"creative":        {"Creative Work", "Design"},
		"people-oriented": {"People Management", "Communication"},
		"leadership":      {"Leadership", "Management"},
	}

	for code, want := range tests {
		t.Run(code, func(t *testing.T) {
			got := ExtractProfile(types.QuizAnswers{"1": code})
			assert.Equal(t, want, got.Interests)
			assert.Empty(t, got.Skills)
		})
	}
}

func TestExtractProfile_SkillTable(t *testing.T) {
	tests := map[string][]string{
		"technical":         {"Technical Skills", "Programming"},
		"communication":     {"Communication", "Public Speaking"},
		"leadership-skills": {"Leadership", "Team Management"},
		"creative-skills":   {"Creativity", "Design Thinking"},
	}

	for code, want := range tests {
		t.Run(code, func(t *testing.T) {
			got := ExtractProfile(types.QuizAnswers{"7": code})
			assert.Equal(t, want, got.Skills)
			assert.Empty(t, got.Interests)
		})
	}
}

func TestExtractProfile_CareerGoals(t *testing.T) {
	got := ExtractProfile(types.QuizAnswers{"3": "impact"})
	assert.Equal(t, "Making a positive impact on society", got.CareerGoals)

	got = ExtractProfile(types.QuizAnswers{"3": "unknown-code"})
	assert.Empty(t, got.CareerGoals)
}

func TestExtractProfile_VerbatimFields(t *testing.T) {
	got := ExtractProfile(types.QuizAnswers{
		"2":  "remote-flexible",
		"4":  "Healthcare & Biotech",
		"10": " 3-5 years ",
	})

	assert.Equal(t, "remote-flexible", got.WorkStyle)
	assert.Equal(t, "Healthcare & Biotech", got.Industry)
	assert.Equal(t, " 3-5 years ", got.Experience)
}

func TestExtractProfile_UnrecognizedListAnswersAppendNothing(t *testing.T) {
	got := ExtractProfile(types.QuizAnswers{"1": "spontaneous", "7": "juggling"})

	assert.NotNil(t, got.Interests)
	assert.Empty(t, got.Interests)
	assert.Empty(t, got.Skills)
}

// "1" and "01" are the same question; both contribute, in key order.
func TestExtractProfile_DuplicateQuestionIDs(t *testing.T) {
	got := ExtractProfile(types.QuizAnswers{
		"1":  "creative",
		"01": "analytical",
		"4":  "tech",
		"04": "finance",
	})

	assert.Equal(t, []string{"Problem Solving", "Analysis", "Creative Work", "Design"}, got.Interests)
	assert.Equal(t, "tech", got.Industry)
}

func TestExtractProfile_Deterministic(t *testing.T) {
	answers := types.QuizAnswers{
		"1": "leadership", "2": "collaborative", "3": "growth",
		"4": "finance", "7": "communication", "10": "entry-level",
	}

	first := ExtractProfile(answers)
	for i := 0; i < 50; i++ {
		require.Equal(t, first, ExtractProfile(answers))
	}

	// Same content decoded from JSON in a different key order.
	var reordered types.QuizAnswers
	require.NoError(t, json.Unmarshal([]byte(`{"10":"entry-level","7":"communication","4":"finance","3":"growth","2":"collaborative","1":"leadership"}`), &reordered))
	assert.Equal(t, first, ExtractProfile(reordered))

	assert.Equal(t, types.CareerProfile{
		Interests:   []string{"Leadership", "Management"},
		Skills:      []string{"Communication", "Public Speaking"},
		WorkStyle:   "collaborative",
		CareerGoals: "Continuous learning and professional growth",
		Industry:    "finance",
		Experience:  "entry-level",
	}, first)
}

func TestExtractProfile_DoesNotShareTableSlices(t *testing.T) {
	a := ExtractProfile(types.QuizAnswers{"1": "analytical"})
	a.Interests[0] = "mutated"

	b := ExtractProfile(types.QuizAnswers{"1": "analytical"})
	assert.Equal(t, "Problem Solving", b.Interests[0])
}
