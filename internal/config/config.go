package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the timebot client
type Config struct {
	API         APIConfig
	Cache       CacheConfig
	Policy      PolicyConfig
	Application ApplicationConfig
}

// APIConfig holds remote service configuration
type APIConfig struct {
	BaseURL string        `env:"TIMEBOT_API_BASE_URL"`
	Timeout time.Duration `env:"TIMEBOT_API_TIMEOUT"`
	Token   string        `env:"TIMEBOT_API_TOKEN"`
}

// CacheConfig holds local snapshot storage configuration
type CacheConfig struct {
	Dir            string        `env:"TIMEBOT_CACHE_DIR"`
	Filename       string        `env:"TIMEBOT_CACHE_FILENAME"`
	StoreName      string        `env:"TIMEBOT_CACHE_STORE_NAME"`
	QueryTimeout   time.Duration `env:"TIMEBOT_CACHE_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TIMEBOT_CACHE_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TIMEBOT_CACHE_DIR_PERMISSIONS"`
}

// PolicyConfig holds timekeeping policy constants
type PolicyConfig struct {
	OvertimeThreshold float64 `env:"TIMEBOT_POLICY_OVERTIME_THRESHOLD"`
	DefaultStartTime  string  `env:"TIMEBOT_POLICY_DEFAULT_START"`
	DefaultEndTime    string  `env:"TIMEBOT_POLICY_DEFAULT_END"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TIMEBOT_APP_TIMEOUT"`
	Verbose bool          `env:"TIMEBOT_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultCacheDir := filepath.Join(homeDir, ".timebot")

	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api/v1",
			Timeout: 10 * time.Second,
		},
		Cache: CacheConfig{
			Dir:            defaultCacheDir,
			Filename:       "timebot.db",
			StoreName:      "TimecardStore",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Policy: PolicyConfig{
			OvertimeThreshold: 40,
			DefaultStartTime:  "08:00",
			DefaultEndTime:    "17:00",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetCachePath returns the full path to the local snapshot database file
func (c *Config) GetCachePath() string {
	return filepath.Join(c.Cache.Dir, c.Cache.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// API configuration
	if baseURL := os.Getenv("TIMEBOT_API_BASE_URL"); baseURL != "" {
		c.API.BaseURL = baseURL
	}
	if timeout := os.Getenv("TIMEBOT_API_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.API.Timeout = d
		}
	}
	if token := os.Getenv("TIMEBOT_API_TOKEN"); token != "" {
		c.API.Token = token
	}

	// Cache configuration
	if dir := os.Getenv("TIMEBOT_CACHE_DIR"); dir != "" {
		c.Cache.Dir = dir
	}
	if filename := os.Getenv("TIMEBOT_CACHE_FILENAME"); filename != "" {
		c.Cache.Filename = filename
	}
	if storeName := os.Getenv("TIMEBOT_CACHE_STORE_NAME"); storeName != "" {
		c.Cache.StoreName = storeName
	}
	if timeout := os.Getenv("TIMEBOT_CACHE_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Cache.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TIMEBOT_CACHE_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Cache.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TIMEBOT_CACHE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Cache.DirPermissions = uint32(p)
		}
	}

	// Policy configuration
	if threshold := os.Getenv("TIMEBOT_POLICY_OVERTIME_THRESHOLD"); threshold != "" {
		if f, err := strconv.ParseFloat(threshold, 64); err == nil {
			c.Policy.OvertimeThreshold = f
		}
	}
	if start := os.Getenv("TIMEBOT_POLICY_DEFAULT_START"); start != "" {
		c.Policy.DefaultStartTime = start
	}
	if end := os.Getenv("TIMEBOT_POLICY_DEFAULT_END"); end != "" {
		c.Policy.DefaultEndTime = end
	}

	// Application configuration
	if timeout := os.Getenv("TIMEBOT_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TIMEBOT_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate API configuration
	if c.API.BaseURL == "" {
		return &ConfigError{Field: "api.base_url", Message: "API base URL cannot be empty"}
	}
	if c.API.Timeout <= 0 {
		return &ConfigError{Field: "api.timeout", Message: "API timeout must be positive"}
	}

	// Validate cache configuration
	if c.Cache.Dir == "" {
		return &ConfigError{Field: "cache.dir", Message: "cache directory cannot be empty"}
	}
	if c.Cache.Filename == "" {
		return &ConfigError{Field: "cache.filename", Message: "cache filename cannot be empty"}
	}
	if c.Cache.StoreName == "" {
		return &ConfigError{Field: "cache.store_name", Message: "cache store name cannot be empty"}
	}
	if c.Cache.QueryTimeout <= 0 {
		return &ConfigError{Field: "cache.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Cache.WriteTimeout <= 0 {
		return &ConfigError{Field: "cache.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate policy configuration
	if c.Policy.OvertimeThreshold <= 0 {
		return &ConfigError{Field: "policy.overtime_threshold", Message: "overtime threshold must be positive"}
	}
	if c.Policy.DefaultStartTime == "" {
		return &ConfigError{Field: "policy.default_start_time", Message: "default start time cannot be empty"}
	}
	if c.Policy.DefaultEndTime == "" {
		return &ConfigError{Field: "policy.default_end_time", Message: "default end time cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}
