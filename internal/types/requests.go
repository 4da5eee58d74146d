package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxInsightIndustries caps how many industries one insights request may ask for.
const MaxInsightIndustries = 5

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
	Context string `json:"context,omitempty" validate:"max=4000"`
}

// QuizRequest is the body of POST /api/analyze-quiz
type QuizRequest struct {
	Answers QuizAnswers `json:"answers" validate:"required,min=1"`
}

// AssessmentRequest is the body of POST /api/career-assessment
type AssessmentRequest struct {
	Skills     []string `json:"skills,omitempty" validate:"max=50,dive,max=200"`
	Interests  []string `json:"interests,omitempty" validate:"max=50,dive,max=200"`
	Experience string   `json:"experience,omitempty" validate:"max=4000"`
	Education  string   `json:"education,omitempty" validate:"max=2000"`
	Goals      string   `json:"goals,omitempty" validate:"max=2000"`
}

// InsightsRequest is the body of POST /api/industry-insights.
// Either a single industry or a list may be given; both are merged.
type InsightsRequest struct {
	Industry   string   `json:"industry,omitempty" validate:"max=200"`
	Industries []string `json:"industries,omitempty" validate:"max=10,dive,max=200"`
}

var validate = validator.New()

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	r.Message = strings.TrimSpace(r.Message)
	return validate.Struct(r)
}

// Validate validates the QuizRequest using the validator.
func (r *QuizRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the AssessmentRequest using the validator.
// At least one of skills, interests or experience must carry content.
func (r *AssessmentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	r.Skills = compact(r.Skills)
	r.Interests = compact(r.Interests)
	r.Experience = strings.TrimSpace(r.Experience)
	if len(r.Skills) == 0 && len(r.Interests) == 0 && r.Experience == "" {
		return &FieldError{Field: "skills", Message: "one of skills, interests or experience is required"}
	}
	return nil
}

// Validate validates the InsightsRequest using the validator.
func (r *InsightsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	n := len(r.Names())
	if n == 0 {
		return &FieldError{Field: "industry", Message: "industry or industries is required"}
	}
	if n > MaxInsightIndustries {
		return &FieldError{Field: "industries", Message: "at most 5 industries per request"}
	}
	return nil
}

// Names merges Industry and Industries, trimming blanks and dropping
// case-insensitive duplicates while keeping the first spelling seen.
func (r *InsightsRequest) Names() []string {
	all := append([]string{r.Industry}, r.Industries...)
	seen := make(map[string]bool, len(all))
	names := make([]string, 0, len(all))
	for _, name := range all {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	return names
}

// FieldError is a request validation failure not expressible as a struct tag
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
