// Package advisor orchestrates prompts, the model client and the response parsers
// behind each API operation.
package advisor

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/career-advisor/internal/analysis"
	"github.com/jonathan/career-advisor/internal/insights"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/profile"
	"github.com/jonathan/career-advisor/internal/prompts"
	"github.com/jonathan/career-advisor/internal/types"
	"go.uber.org/zap"
)

// DefaultTimeout bounds one model call when no timeout is configured.
const DefaultTimeout = 60 * time.Second

// Service answers the career advice operations.
type Service struct {
	client   llm.Client
	insights *insights.Service
	logger   *zap.Logger
	metrics  *observability.Metrics
	timeout  time.Duration
}

// Options configures a Service. Zero values use defaults.
type Options struct {
	Insights *insights.Service
	Logger   *zap.Logger
	Metrics  *observability.Metrics
	Timeout  time.Duration
}

// QuizResult is the outcome of AnalyzeQuiz.
type QuizResult struct {
	Profile     types.CareerProfile
	Analysis    types.StructuredAnalysis
	RawAnalysis string
}

// AssessmentResult is the outcome of AssessCareer.
type AssessmentResult struct {
	Analysis    types.StructuredAnalysis
	RawAnalysis string
}

// New creates a Service around client.
func New(client llm.Client, opts Options) *Service {
	s := &Service{
		client:   client,
		insights: opts.Insights,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		timeout:  opts.Timeout,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.insights == nil {
		s.insights = insights.NewService(client, insights.WithLogger(s.logger), insights.WithMetrics(s.metrics))
	}
	return s
}

// Chat answers one free-form question. Context, when present, is prior
// conversation the user wants the model to consider.
func (s *Service) Chat(ctx context.Context, req types.ChatRequest) (string, error) {
	data := map[string]string{"Message": strings.TrimSpace(req.Message)}
	if c := strings.TrimSpace(req.Context); c != "" {
		data["Context"] = "Conversation so far:\n" + c + "\n\n"
	}
	return s.generate(ctx, "chat", prompts.Build(prompts.KeyChat, data), llm.TierLite)
}

// AnalyzeQuiz derives a profile from quiz answers and asks the model to analyze it.
func (s *Service) AnalyzeQuiz(ctx context.Context, answers types.QuizAnswers) (*QuizResult, error) {
	p := profile.ExtractProfile(answers)
	if p.IsEmpty() {
		s.logger.Info("quiz answers matched no known question", zap.Int("answers", len(answers)))
	}
	prompt := prompts.Build(prompts.KeyQuizAnalysis, map[string]string{
		"Interests":   listOrUnspecified(p.Interests),
		"Skills":      listOrUnspecified(p.Skills),
		"WorkStyle":   orUnspecified(p.WorkStyle),
		"CareerGoals": orUnspecified(p.CareerGoals),
		"Industry":    orUnspecified(p.Industry),
		"Experience":  orUnspecified(p.Experience),
	})

	raw, err := s.generate(ctx, "quiz_analysis", prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}
	return &QuizResult{
		Profile:     p,
		Analysis:    s.parse("quiz", raw),
		RawAnalysis: raw,
	}, nil
}

// AssessCareer asks the model to assess a free-text self description.
func (s *Service) AssessCareer(ctx context.Context, req types.AssessmentRequest) (*AssessmentResult, error) {
	prompt := prompts.Build(prompts.KeyCareerAssessment, map[string]string{
		"Skills":     listOrUnspecified(req.Skills),
		"Interests":  listOrUnspecified(req.Interests),
		"Experience": orUnspecified(req.Experience),
		"Education":  orUnspecified(req.Education),
		"Goals":      orUnspecified(req.Goals),
	})

	raw, err := s.generate(ctx, "career_assessment", prompt, llm.TierAdvanced)
	if err != nil {
		return nil, err
	}
	return &AssessmentResult{
		Analysis:    s.parse("assessment", raw),
		RawAnalysis: raw,
	}, nil
}

// IndustryInsights returns insights for each industry, in order.
func (s *Service) IndustryInsights(ctx context.Context, industries []string) ([]types.IndustryInsights, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.insights.GetMany(ctx, industries)
	if err != nil {
		return nil, &GenerationError{Operation: "industry_insights", Err: err}
	}
	return result, nil
}

func (s *Service) generate(ctx context.Context, operation, prompt string, tier llm.ModelTier) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", &GenerationError{Operation: operation, Err: err}
	}
	return strings.TrimSpace(text), nil
}

func (s *Service) parse(source, raw string) types.StructuredAnalysis {
	result := analysis.ParseAnalysis(raw)
	if s.metrics != nil {
		s.metrics.RecommendationsParsed.WithLabelValues(source).Observe(float64(len(result.Recommendations)))
	}
	if len(result.Recommendations) == 0 {
		s.logger.Warn("no recommendations recovered from analysis",
			zap.String("source", source),
			zap.Int("length", len(raw)))
	}
	return result
}

func listOrUnspecified(values []string) string {
	if len(values) == 0 {
		return "Not specified"
	}
	return strings.Join(values, ", ")
}

func orUnspecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not specified"
	}
	return value
}
