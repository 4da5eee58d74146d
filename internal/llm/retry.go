package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

// RetryConfig controls exponential backoff around model calls.
type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Multiplier      float64
}

// DefaultRetryConfig returns conservative settings for interactive requests.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  20 * time.Second,
		Multiplier:      2.0,
	}
}

// RetryingClient retries transient failures of the wrapped Client.
type RetryingClient struct {
	next    Client
	cfg     RetryConfig
	logger  *zap.Logger
	onRetry func(operation string)
}

// NewRetryingClient wraps next with retries. onRetry may be nil.
func NewRetryingClient(next Client, cfg RetryConfig, logger *zap.Logger, onRetry func(operation string)) *RetryingClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RetryingClient{next: next, cfg: cfg, logger: logger, onRetry: onRetry}
}

// GenerateContent implements Client.
func (c *RetryingClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.do(ctx, "generate_content", func() (string, error) {
		return c.next.GenerateContent(ctx, prompt, tier)
	})
}

// GenerateJSON implements Client.
func (c *RetryingClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.do(ctx, "generate_json", func() (string, error) {
		return c.next.GenerateJSON(ctx, prompt, tier)
	})
}

// GetModel implements Client.
func (c *RetryingClient) GetModel(tier ModelTier) string {
	return c.next.GetModel(tier)
}

// Close implements Client.
func (c *RetryingClient) Close() error {
	return c.next.Close()
}

func (c *RetryingClient) do(ctx context.Context, operation string, call func() (string, error)) (string, error) {
	var out string
	attempt := 0
	op := func() error {
		attempt++
		text, err := call()
		if err == nil {
			out = text
			return nil
		}
		if !IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Warn("retrying model call",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		if c.onRetry != nil {
			c.onRetry(operation)
		}
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(c.backoff(), ctx), notify); err != nil {
		return "", err
	}
	return out, nil
}

func (c *RetryingClient) backoff() *backoff.ExponentialBackOff {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = c.cfg.InitialInterval
	expo.MaxInterval = c.cfg.MaxInterval
	expo.MaxElapsedTime = c.cfg.MaxElapsedTime
	if c.cfg.Multiplier > 0 {
		expo.Multiplier = c.cfg.Multiplier
	}
	expo.Reset()
	return expo
}

// IsTransient reports whether a model call failure is worth retrying:
// rate limiting, server-side errors and network faults are; cancellation,
// blocked or empty answers and client errors are not.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrEmptyResponse) {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return true
}
