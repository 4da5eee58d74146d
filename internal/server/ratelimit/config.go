package ratelimit

import (
	"net/http"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Paths of the model-backed endpoints.
const (
	PathChat         = "/api/chat"
	PathAnalyzeQuiz  = "/api/analyze-quiz"
	PathAssessment   = "/api/career-assessment"
	PathInsights     = "/api/industry-insights"
	PathHealth       = "/api/health"
	defaultAILimit   = 30
	defaultAIBurst   = 5
	defaultRestLimit = 300
)

// DefaultConfig returns an enabled configuration with the default AI endpoint limits.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    defaultRestLimit,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(defaultAILimit, defaultAIBurst),
	}
}

// DefaultEndpointConfigs limits every model-backed endpoint to perMinute
// requests per client with the given burst. Anything else falls back to the default limit.
func DefaultEndpointConfigs(perMinute, burst int) []EndpointConfig {
	paths := []string{PathChat, PathAnalyzeQuiz, PathAssessment, PathInsights}
	configs := make([]EndpointConfig, 0, len(paths))
	for _, p := range paths {
		configs = append(configs, EndpointConfig{
			Path:   p,
			Method: http.MethodPost,
			Limit:  perMinute,
			Window: time.Minute,
			Burst:  burst,
		})
	}
	return configs
}
