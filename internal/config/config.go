// Package config loads service configuration from defaults, an optional YAML
// file and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/logging"
	"github.com/jonathan/career-advisor/internal/server/ratelimit"
	"gopkg.in/yaml.v3"
)

// Config holds all service configuration. Every field can be set from YAML or
// from the environment variable in its env tag.
type Config struct {
	AppEnv    string `yaml:"app_env" env:"APP_ENV"`
	Port      int    `yaml:"port" env:"PORT"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`

	GeminiAPIKey string `yaml:"-" env:"GEMINI_API_KEY"`

	CORSAllowOrigins string `yaml:"cors_allow_origins" env:"CORS_ALLOW_ORIGINS"`

	LLMModelLite            string        `yaml:"llm_model_lite" env:"LLM_MODEL_LITE"`
	LLMModelStandard        string        `yaml:"llm_model_standard" env:"LLM_MODEL_STANDARD"`
	LLMModelAdvanced        string        `yaml:"llm_model_advanced" env:"LLM_MODEL_ADVANCED"`
	LLMTemperature          float32       `yaml:"llm_temperature" env:"LLM_TEMPERATURE"`
	LLMTimeout              time.Duration `yaml:"llm_timeout" env:"LLM_TIMEOUT"`
	LLMRetryMaxElapsed      time.Duration `yaml:"llm_retry_max_elapsed" env:"LLM_RETRY_MAX_ELAPSED"`
	LLMRetryInitialInterval time.Duration `yaml:"llm_retry_initial_interval" env:"LLM_RETRY_INITIAL_INTERVAL"`

	RedisURL         string        `yaml:"redis_url" env:"REDIS_URL"`
	InsightsCacheTTL time.Duration `yaml:"insights_cache_ttl" env:"INSIGHTS_CACHE_TTL"`

	RateLimitEnabled      bool     `yaml:"rate_limit_enabled" env:"RATE_LIMIT_ENABLED"`
	RateLimitAIPerMinute  int      `yaml:"rate_limit_ai_per_minute" env:"RATE_LIMIT_AI_PER_MINUTE"`
	RateLimitAIBurst      int      `yaml:"rate_limit_ai_burst" env:"RATE_LIMIT_AI_BURST"`
	RateLimitDefaultLimit int      `yaml:"rate_limit_default_limit" env:"RATE_LIMIT_DEFAULT_LIMIT"`
	RateLimitWhitelist    []string `yaml:"rate_limit_whitelist" env:"RATE_LIMIT_WHITELIST" envSeparator:","`

	HTTPReadTimeout  time.Duration `yaml:"http_read_timeout" env:"HTTP_READ_TIMEOUT"`
	HTTPWriteTimeout time.Duration `yaml:"http_write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// Default returns the built-in configuration.
func Default() Config {
	models := llm.DefaultGeminiConfig().Models
	retry := llm.DefaultRetryConfig()
	return Config{
		AppEnv:    "dev",
		Port:      8080,
		LogLevel:  "info",
		LogFormat: logging.FormatJSON,

		CORSAllowOrigins: "*",

		LLMModelLite:            models[llm.TierLite],
		LLMModelStandard:        models[llm.TierStandard],
		LLMModelAdvanced:        models[llm.TierAdvanced],
		LLMTemperature:          llm.DefaultTemperature,
		LLMTimeout:              60 * time.Second,
		LLMRetryMaxElapsed:      retry.MaxElapsedTime,
		LLMRetryInitialInterval: retry.InitialInterval,

		InsightsCacheTTL: 24 * time.Hour,

		RateLimitEnabled:      true,
		RateLimitAIPerMinute:  30,
		RateLimitAIBurst:      5,
		RateLimitDefaultLimit: 300,

		HTTPReadTimeout:  15 * time.Second,
		HTTPWriteTimeout: 90 * time.Second,
		ShutdownTimeout:  30 * time.Second,
	}
}

// Load returns Default overlaid with the YAML file at path (when non-empty)
// and then with environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return nil
}

// Validate checks that the configuration has valid values.
// It does not require GEMINI_API_KEY; commands that call the model check it.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.LogFormat != logging.FormatJSON && c.LogFormat != logging.FormatConsole {
		return fmt.Errorf("config error: 'log_format' must be json or console, got %q", c.LogFormat)
	}
	if c.LLMTemperature < 0 || c.LLMTemperature > 2 {
		return fmt.Errorf("config error: 'llm_temperature' must be between 0 and 2")
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("config error: 'llm_timeout' must be positive")
	}
	if c.LLMRetryMaxElapsed < 0 || c.LLMRetryInitialInterval < 0 {
		return fmt.Errorf("config error: retry durations must be non-negative")
	}
	if c.InsightsCacheTTL < 0 {
		return fmt.Errorf("config error: 'insights_cache_ttl' must be non-negative")
	}
	if c.RateLimitEnabled && (c.RateLimitAIPerMinute < 1 || c.RateLimitAIBurst < 1) {
		return fmt.Errorf("config error: AI rate limit and burst must be at least 1")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config error: 'shutdown_timeout' must be positive")
	}
	return nil
}

// IsDev reports whether the service is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsTest reports whether the service is running under tests.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }

// LLMConfig returns the model configuration.
func (c Config) LLMConfig() *llm.Config {
	return llm.DefaultGeminiConfig().
		WithModel(llm.TierLite, c.LLMModelLite).
		WithModel(llm.TierStandard, c.LLMModelStandard).
		WithModel(llm.TierAdvanced, c.LLMModelAdvanced).
		WithTemperature(c.LLMTemperature)
}

// RetryConfig returns the model retry policy. Test environments retry briefly.
func (c Config) RetryConfig() llm.RetryConfig {
	cfg := llm.DefaultRetryConfig()
	if c.IsTest() {
		cfg.InitialInterval = 10 * time.Millisecond
		cfg.MaxInterval = 50 * time.Millisecond
		cfg.MaxElapsedTime = 200 * time.Millisecond
		return cfg
	}
	cfg.InitialInterval = c.LLMRetryInitialInterval
	cfg.MaxElapsedTime = c.LLMRetryMaxElapsed
	return cfg
}

// RateLimitConfig returns the limiter configuration for the API routes.
func (c Config) RateLimitConfig() *ratelimit.Config {
	cfg := ratelimit.DefaultConfig()
	cfg.Enabled = c.RateLimitEnabled
	cfg.DefaultLimit = c.RateLimitDefaultLimit
	cfg.EndpointConfigs = ratelimit.DefaultEndpointConfigs(c.RateLimitAIPerMinute, c.RateLimitAIBurst)
	for _, ip := range c.RateLimitWhitelist {
		if ip = strings.TrimSpace(ip); ip != "" {
			cfg.Whitelist[ip] = true
		}
	}
	return cfg
}
