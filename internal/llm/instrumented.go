package llm

import (
	"context"
	"errors"
	"time"

	"github.com/jonathan/career-advisor/internal/observability"
	"go.uber.org/zap"
)

// InstrumentedClient records metrics and debug logs for every call to the wrapped Client.
type InstrumentedClient struct {
	next    Client
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewInstrumentedClient wraps next. metrics and logger may be nil.
func NewInstrumentedClient(next Client, metrics *observability.Metrics, logger *zap.Logger) *InstrumentedClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstrumentedClient{next: next, metrics: metrics, logger: logger}
}

// GenerateContent implements Client.
func (c *InstrumentedClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	start := time.Now()
	text, err := c.next.GenerateContent(ctx, prompt, tier)
	c.observe("generate_content", tier, len(prompt), len(text), start, err)
	return text, err
}

// GenerateJSON implements Client.
func (c *InstrumentedClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	start := time.Now()
	text, err := c.next.GenerateJSON(ctx, prompt, tier)
	c.observe("generate_json", tier, len(prompt), len(text), start, err)
	return text, err
}

// GetModel implements Client.
func (c *InstrumentedClient) GetModel(tier ModelTier) string {
	return c.next.GetModel(tier)
}

// Close implements Client.
func (c *InstrumentedClient) Close() error {
	return c.next.Close()
}

func (c *InstrumentedClient) observe(operation string, tier ModelTier, promptLen, responseLen int, start time.Time, err error) {
	elapsed := time.Since(start)
	outcome := Outcome(err)

	if c.metrics != nil {
		c.metrics.LLMRequestsTotal.WithLabelValues(operation, string(tier), outcome).Inc()
		c.metrics.LLMRequestDuration.WithLabelValues(operation, string(tier)).Observe(elapsed.Seconds())
	}

	fields := []zap.Field{
		zap.String("operation", operation),
		zap.String("model", c.next.GetModel(tier)),
		zap.Int("prompt_chars", promptLen),
		zap.Int("response_chars", responseLen),
		zap.Duration("elapsed", elapsed),
		zap.String("outcome", outcome),
	}
	if err != nil {
		c.logger.Warn("model call failed", append(fields, zap.Error(err))...)
		return
	}
	c.logger.Debug("model call", fields...)
}

// Outcome classifies a model call result for metric labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, ErrEmptyResponse):
		return "empty"
	default:
		return "error"
	}
}
