// Package insights generates structured industry overviews and caches them.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/career-advisor/internal/cache"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/prompts"
	"github.com/jonathan/career-advisor/internal/schemas"
	"github.com/jonathan/career-advisor/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	cacheNamespace = "insights"

	// DefaultTTL is how long an insights document stays cached.
	DefaultTTL = 24 * time.Hour

	// maxParallel bounds concurrent model calls for one GetMany.
	maxParallel = 3
)

// Service produces IndustryInsights, consulting the cache before the model.
type Service struct {
	client  llm.Client
	store   cache.Store
	ttl     time.Duration
	logger  *zap.Logger
	metrics *observability.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithCache sets the cache store and TTL.
func WithCache(store cache.Store, ttl time.Duration) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records cache lookups on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService creates a Service. Without WithCache nothing is cached.
func NewService(client llm.Client, opts ...Option) *Service {
	s := &Service{
		client: client,
		store:  cache.NopStore{},
		ttl:    DefaultTTL,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SchemaError reports model output that is not a valid insights document.
type SchemaError struct {
	Industry string
	Cause    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid insights for %q: %v", e.Industry, e.Cause)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Get returns insights for one industry.
func (s *Service) Get(ctx context.Context, industry string) (*types.IndustryInsights, error) {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return nil, fmt.Errorf("industry is required")
	}
	key := cache.Key(cacheNamespace, industry)

	if cached, ok := s.lookup(ctx, key); ok {
		if result, err := decode(industry, cached); err == nil {
			return result, nil
		}
		s.logger.Warn("discarding unreadable cached insights", zap.String("industry", industry))
	}

	prompt := prompts.Build(prompts.KeyIndustryInsights, map[string]string{"Industry": industry})
	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to generate insights for %q: %w", industry, err)
	}

	doc := llm.ExtractJSONObject(raw)
	if err := schemas.Validate(schemas.IndustryInsights, doc); err != nil {
		return nil, &SchemaError{Industry: industry, Cause: err}
	}
	result, err := decode(industry, doc)
	if err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, key, doc, s.ttl); err != nil {
		s.logger.Warn("failed to cache insights", zap.String("industry", industry), zap.Error(err))
	}
	return result, nil
}

// GetMany returns insights for each industry in input order. The first failure
// cancels the remaining calls.
func (s *Service) GetMany(ctx context.Context, industries []string) ([]types.IndustryInsights, error) {
	results := make([]types.IndustryInsights, len(industries))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, industry := range industries {
		g.Go(func() error {
			result, err := s.Get(gCtx, industry)
			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// lookup treats cache failures as misses.
func (s *Service) lookup(ctx context.Context, key string) (string, bool) {
	val, found, err := s.store.Get(ctx, key)
	result := "miss"
	switch {
	case err != nil:
		result = "error"
		s.logger.Warn("insights cache lookup failed", zap.Error(err))
		found = false
	case found:
		result = "hit"
	}
	if s.metrics != nil {
		s.metrics.CacheLookupsTotal.WithLabelValues(cacheNamespace, result).Inc()
	}
	return val, found
}

func decode(industry, doc string) (*types.IndustryInsights, error) {
	var result types.IndustryInsights
	if err := json.Unmarshal([]byte(doc), &result); err != nil {
		return nil, &SchemaError{Industry: industry, Cause: err}
	}
	if result.Trends == nil {
		result.Trends = []string{}
	}
	if result.InDemandSkills == nil {
		result.InDemandSkills = []string{}
	}
	return &result, nil
}
