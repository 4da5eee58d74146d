package main

import (
	"fmt"

	"github.com/jonathan/career-advisor/internal/cache"
	"github.com/jonathan/career-advisor/internal/insights"
	"github.com/jonathan/career-advisor/internal/logging"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/types"
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate industry insights for one or more industries",
	Long:  "Generate schema-validated industry insights with the configured model, using the Redis cache when REDIS_URL is set.",
	RunE:  runInsights,
}

var (
	insightsIndustries []string
	insightsAPIKey     string
	insightsVerbose    bool
)

func init() {
	insightsCmd.Flags().StringSliceVar(&insightsIndustries, "industry", nil, "Industry name (repeatable or comma separated, required)")
	insightsCmd.Flags().StringVar(&insightsAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	insightsCmd.Flags().BoolVarP(&insightsVerbose, "verbose", "v", false, "Print a human readable summary instead of JSON")
	_ = insightsCmd.MarkFlagRequired("industry")

	rootCmd.AddCommand(insightsCmd)
}

// industryNames applies the same trimming, dedupe and limit as the HTTP endpoint.
func industryNames(values []string) ([]string, error) {
	req := types.InsightsRequest{Industries: values}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid --industry: %w", err)
	}
	return req.Names(), nil
}

func runInsights(cmd *cobra.Command, _ []string) error {
	industries, err := industryNames(insightsIndustries)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, logging.FormatConsole)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	apiKey := insightsAPIKey
	if apiKey == "" {
		apiKey = cfg.GeminiAPIKey
	}

	ctx := cmd.Context()
	client, err := newModelClient(ctx, cfg, apiKey, logger, nil)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	store, err := cache.Open(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect to cache: %w", err)
	}
	defer func() { _ = store.Close() }()

	svc := insights.NewService(client, insights.WithCache(store, cfg.InsightsCacheTTL), insights.WithLogger(logger))
	results, err := svc.GetMany(ctx, industries)
	if err != nil {
		return err
	}

	if insightsVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		for i := range results {
			printer.PrintIndustryInsights(&results[i])
		}
		return nil
	}
	return writeJSON(cmd, results)
}
