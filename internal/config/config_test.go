package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-pricing/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":                   "",
		"PRICING_LOG_LEVEL":         "",
		"PRICING_LOG_FORMAT":        "",
		"PRICING_METRICS_ENABLED":   "",
		"PRICING_METRICS_NAMESPACE": "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.True(t, cfg.MetricsEnabled)
	require.Equal(t, "toko", cfg.MetricsNamespace)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":                   "production",
		"PRICING_LOG_LEVEL":         "warning",
		"PRICING_LOG_FORMAT":        "console",
		"PRICING_METRICS_ENABLED":   "off",
		"PRICING_METRICS_NAMESPACE": "shop",
	})
	require.NoError(t, err)
	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, "warning", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)
	require.False(t, cfg.MetricsEnabled)
	require.Equal(t, "shop", cfg.MetricsNamespace)
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{"PRICING_LOG_FORMAT": "xml"})
	require.Error(t, err)
}
