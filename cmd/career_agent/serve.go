package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/cache"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/insights"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/logging"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the chat, quiz analysis, career assessment and industry insights endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT and the config file)")
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file named by --config, then the environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newModelClient builds the Gemini client wrapped with retries and instrumentation.
func newModelClient(ctx context.Context, cfg config.Config, apiKey string, logger *zap.Logger, metrics *observability.Metrics) (llm.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	base, err := llm.NewClient(ctx, cfg.LLMConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	var onRetry func(string)
	if metrics != nil {
		onRetry = func(operation string) {
			metrics.LLMRetriesTotal.WithLabelValues(operation).Inc()
		}
	}
	retrying := llm.NewRetryingClient(base, cfg.RetryConfig(), logger, onRetry)
	return llm.NewInstrumentedClient(retrying, metrics, logger), nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := newModelClient(ctx, cfg, cfg.GeminiAPIKey, logger, metrics)
	if err != nil {
		return err
	}

	store, err := cache.Open(ctx, cfg.RedisURL)
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to cache: %w", err)
	}

	insightsSvc := insights.NewService(client,
		insights.WithCache(store, cfg.InsightsCacheTTL),
		insights.WithLogger(logger),
		insights.WithMetrics(metrics),
	)
	advisorSvc := advisor.New(client, advisor.Options{
		Insights: insightsSvc,
		Logger:   logger,
		Metrics:  metrics,
		Timeout:  cfg.LLMTimeout,
	})

	srv, err := server.New(cfg, server.Deps{
		Advisor:  advisorSvc,
		Logger:   logger,
		Metrics:  metrics,
		Registry: registry,
		Closers:  []io.Closer{client, store},
	})
	if err != nil {
		_ = client.Close()
		_ = store.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
