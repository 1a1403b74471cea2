package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// RateLimitConfig controls per-client throttling of analysis requests.
// The zero value disables throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

// Enabled reports whether throttling is active.
func (r RateLimitConfig) Enabled() bool {
	return r.RequestsPerSecond > 0
}

// CORSConfig lists the origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// Config is the top-level service configuration.
type Config struct {
	Port          int             `yaml:"port"`
	Debug         bool            `yaml:"debug"`
	AnalysisDelay time.Duration   `yaml:"analysisDelay"`
	RateLimit     RateLimitConfig `yaml:"rateLimit"`
	CORS          CORSConfig      `yaml:"cors"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For /
	// X-Real-IP. Only enable behind a proxy that overwrites those headers.
	TrustProxyHeaders bool `yaml:"trustProxyHeaders"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Port:          8080,
		AnalysisDelay: 1500 * time.Millisecond,
		CORS:          CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment overrides, then validates it. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("FACTLENS_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FACTLENS_PORT: %w", err)
		}
		c.Port = port
	}
	if v, ok := lookup("FACTLENS_DEBUG"); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FACTLENS_DEBUG: %w", err)
		}
		c.Debug = debug
	}
	if v, ok := lookup("FACTLENS_ANALYSIS_DELAY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FACTLENS_ANALYSIS_DELAY: %w", err)
		}
		c.AnalysisDelay = d
	}
	if v, ok := lookup("FACTLENS_TRUST_PROXY_HEADERS"); ok && v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FACTLENS_TRUST_PROXY_HEADERS: %w", err)
		}
		c.TrustProxyHeaders = trust
	}
	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
	return nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}
	if c.AnalysisDelay < 0 {
		return fmt.Errorf("analysisDelay must not be negative")
	}
	if c.RateLimit.Enabled() && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rateLimit.burst must be at least 1 when rate limiting is enabled")
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
