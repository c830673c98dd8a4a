package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/greenplate/greenplate/internal/sites"
)

// Default values for the server configuration.
const (
	DefaultHTTPPort       = 8080
	DefaultStreamInterval = 5 * time.Second
)

// Config holds everything parsed from config.yaml.
type Config struct {
	Server ServerConfig `yaml:"server"`

	// Sites overrides the built-in demo site list when non-empty.
	Sites []sites.Site `yaml:"sites"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// HTTPPort is the port the REST API, tool registry, metrics and
	// WebSocket stream listen on (default 8080).
	HTTPPort int `yaml:"http_port"`

	// BaseURL is the externally reachable URL prefix written into the
	// tool-registry manifest. When empty, http://localhost:<port> is used.
	BaseURL string `yaml:"base_url"`

	// StreamInterval is how often the WebSocket hub broadcasts a fresh
	// KPI snapshot (default 5s).
	StreamInterval time.Duration `yaml:"stream_interval"`
}

// EffectiveBaseURL returns BaseURL without a trailing slash, falling
// back to a localhost URL built from HTTPPort.
func (s ServerConfig) EffectiveBaseURL() string {
	if s.BaseURL != "" {
		return strings.TrimRight(s.BaseURL, "/")
	}
	return fmt.Sprintf("http://localhost:%d", s.HTTPPort)
}

// SiteList returns the configured sites, or the built-in defaults when
// the config file does not define any.
func (c *Config) SiteList() []sites.Site {
	if len(c.Sites) > 0 {
		return c.Sites
	}
	return sites.Defaults()
}

// Load reads and parses the config file at path. Missing fields are
// filled with defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return defaults()
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:       DefaultHTTPPort,
			StreamInterval: DefaultStreamInterval,
		},
	}
}

// validate checks structural constraints on the parsed configuration.
func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port %d is out of range [1, 65535]", cfg.Server.HTTPPort)
	}
	if cfg.Server.StreamInterval <= 0 {
		return fmt.Errorf("server.stream_interval must be positive")
	}

	seen := make(map[string]struct{}, len(cfg.Sites))
	for i, s := range cfg.Sites {
		if s.SiteID == "" {
			return fmt.Errorf("sites[%d].site_id must not be empty", i)
		}
		if _, dup := seen[s.SiteID]; dup {
			return fmt.Errorf("sites[%d].site_id %q is duplicated", i, s.SiteID)
		}
		seen[s.SiteID] = struct{}{}

		switch s.Segment {
		case sites.SegmentWorkplace, sites.SegmentSchool, sites.SegmentHealthcare,
			sites.SegmentSenior, sites.SegmentLogistics, "":
		default:
			return fmt.Errorf("sites[%d].segment %q unknown: want workplace|school|healthcare|senior|logistics", i, s.Segment)
		}
	}
	return nil
}
