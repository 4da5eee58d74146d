package types

// StructuredAnalysis is the three-part decomposition of a generated career analysis
type StructuredAnalysis struct {
	Summary         string           `json:"summary"`
	Recommendations []Recommendation `json:"recommendations"`
	NextSteps       []string         `json:"nextSteps"`
}

// Recommendation is one parsed career suggestion
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Match       int    `json:"match"` // 0-100
}

// NewStructuredAnalysis returns an empty analysis whose lists encode as [] rather than null.
func NewStructuredAnalysis() StructuredAnalysis {
	return StructuredAnalysis{
		Recommendations: []Recommendation{},
		NextSteps:       []string{},
	}
}
