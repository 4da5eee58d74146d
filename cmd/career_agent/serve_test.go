package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_PortFlagOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	cfgFile := writeTemp(t, "config.yaml", "port: 7000\nlog_level: debug\n")

	configPath = cfgFile
	servePort = 0
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)

	servePort = 8181
	t.Cleanup(func() { servePort, configPath = 0, "" })
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	configPath, servePort = "", 0

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestServeCommand_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := execute(t, "", "serve", "--port", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestInsightsCommand_RequiresIndustry(t *testing.T) {
	_, err := execute(t, "", "insights")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "industry" not set`)
}

func TestInsightsCommand_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := execute(t, "", "insights", "--industry", "fintech")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
