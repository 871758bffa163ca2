package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "http://localhost:8080/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "timebot.db", cfg.Cache.Filename)
	assert.Equal(t, "TimecardStore", cfg.Cache.StoreName)
	assert.Equal(t, 40.0, cfg.Policy.OvertimeThreshold)
	assert.Equal(t, "08:00", cfg.Policy.DefaultStartTime)
	assert.Equal(t, "17:00", cfg.Policy.DefaultEndTime)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TIMEBOT_API_BASE_URL", "https://timebot.example.com/api/v2")
	t.Setenv("TIMEBOT_API_TIMEOUT", "30s")
	t.Setenv("TIMEBOT_API_TOKEN", "secret-token")
	t.Setenv("TIMEBOT_CACHE_DIR", "/tmp/timebot-test")
	t.Setenv("TIMEBOT_POLICY_OVERTIME_THRESHOLD", "37.5")
	t.Setenv("TIMEBOT_POLICY_DEFAULT_START", "09:00")
	t.Setenv("TIMEBOT_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "https://timebot.example.com/api/v2", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "secret-token", cfg.API.Token)
	assert.Equal(t, "/tmp/timebot-test", cfg.Cache.Dir)
	assert.Equal(t, 37.5, cfg.Policy.OvertimeThreshold)
	assert.Equal(t, "09:00", cfg.Policy.DefaultStartTime)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoadFromEnvironment_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("TIMEBOT_API_TIMEOUT", "not-a-duration")
	t.Setenv("TIMEBOT_POLICY_OVERTIME_THRESHOLD", "forty")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 40.0, cfg.Policy.OvertimeThreshold)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(cfg *Config)
		errorContains string
	}{
		{
			name:   "should accept the default configuration",
			mutate: func(cfg *Config) {},
		},
		{
			name:          "should reject an empty base URL",
			mutate:        func(cfg *Config) { cfg.API.BaseURL = "" },
			errorContains: "api.base_url",
		},
		{
			name:          "should reject a non-positive API timeout",
			mutate:        func(cfg *Config) { cfg.API.Timeout = 0 },
			errorContains: "api.timeout",
		},
		{
			name:          "should reject an empty cache directory",
			mutate:        func(cfg *Config) { cfg.Cache.Dir = "" },
			errorContains: "cache.dir",
		},
		{
			name:          "should reject an empty store name",
			mutate:        func(cfg *Config) { cfg.Cache.StoreName = "" },
			errorContains: "cache.store_name",
		},
		{
			name:          "should reject a non-positive overtime threshold",
			mutate:        func(cfg *Config) { cfg.Policy.OvertimeThreshold = -1 },
			errorContains: "policy.overtime_threshold",
		},
		{
			name:          "should reject an empty default start time",
			mutate:        func(cfg *Config) { cfg.Policy.DefaultStartTime = "" },
			errorContains: "policy.default_start_time",
		},
		{
			name:          "should reject a non-positive application timeout",
			mutate:        func(cfg *Config) { cfg.Application.Timeout = 0 },
			errorContains: "application.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.errorContains == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			}
		})
	}
}

func TestGetCachePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Cache.Dir = "/var/lib/timebot"
	cfg.Cache.Filename = "cache.db"

	assert.Equal(t, "/var/lib/timebot/cache.db", cfg.GetCachePath())
}
