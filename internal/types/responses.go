package types

// Envelope carries the fields every API response shares.
type Envelope struct {
	Timestamp string `json:"timestamp"` // RFC3339, UTC
	RequestID string `json:"requestId"`
}

// ChatResponse is the body returned by POST /api/chat
type ChatResponse struct {
	Response string `json:"response"`
	Envelope
}

// QuizAnalysisResponse is the body returned by POST /api/analyze-quiz
type QuizAnalysisResponse struct {
	Profile     CareerProfile      `json:"profile"`
	Analysis    StructuredAnalysis `json:"analysis"`
	RawAnalysis string             `json:"rawAnalysis"`
	Envelope
}

// AssessmentResponse is the body returned by POST /api/career-assessment
type AssessmentResponse struct {
	Analysis    StructuredAnalysis `json:"analysis"`
	RawAnalysis string             `json:"rawAnalysis"`
	Envelope
}

// InsightsResponse is the body returned by POST /api/industry-insights
type InsightsResponse struct {
	Insights []IndustryInsights `json:"insights"`
	Envelope
}

// HealthResponse is the body returned by GET /api/health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Envelope
}

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}
