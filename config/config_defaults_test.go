package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, 12, cfg.Auth.TempPasswordLength)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Mail)
	assert.Equal(t, "log", cfg.Mail.Provider)
	require.NotNil(t, cfg.Scheduler)
	assert.Equal(t, defaultRollupSpec, cfg.Scheduler.PerformanceRollupSpec)
	require.NotNil(t, cfg.Metrics)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
	assert.NotNil(t, cfg.Pagination)
	assert.Equal(t, defaultSlowQuery, cfg.SlowQueryThreshold)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{TokenTTL: time.Hour, TempPasswordLength: 16},
		Mail: &MailConfig{Provider: "ses"},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 16, cfg.Auth.TempPasswordLength)
	assert.Equal(t, "ses", cfg.Mail.Provider)
}
