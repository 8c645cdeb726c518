// Package config loads the congdan configuration file. The compiled-in
// source list and service defaults apply when no file exists, so the tool
// works with zero configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dvhoang/congdan/internal/feed"
	"github.com/dvhoang/congdan/internal/verify"
)

const (
	DefaultConfigFile = "config.yaml"
	DefaultFetchMode  = "convert"
	DefaultTimeout    = 15 * time.Second
	DefaultAPIKeyEnv  = "GEMINI_API_KEY"
)

// Duration wraps time.Duration for YAML unmarshaling from strings like "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

type Config struct {
	Sources []feed.Source `yaml:"sources"`
	Feed    FeedConfig    `yaml:"feed"`
	Verify  VerifyConfig  `yaml:"verify"`
}

type FeedConfig struct {
	Mode            string   `yaml:"mode"` // "convert" or "direct"
	ConvertEndpoint string   `yaml:"convert_endpoint"`
	Timeout         Duration `yaml:"timeout"`
}

type VerifyConfig struct {
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`

	// Resolved from the env var at load time.
	APIKey string `yaml:"-"`
}

// Load reads config.yaml from dir, applies defaults, resolves env vars, and
// validates. A missing config file is not an error: the compiled-in
// defaults apply instead.
func Load(dir string) (*Config, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("config dir is required")
	}

	var cfg Config
	path := filepath.Join(dir, DefaultConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	applyDefaults(&cfg)
	resolveEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Sources) == 0 {
		cfg.Sources = feed.DefaultSources
	}
	if cfg.Feed.Mode == "" {
		cfg.Feed.Mode = DefaultFetchMode
	}
	if cfg.Feed.ConvertEndpoint == "" {
		cfg.Feed.ConvertEndpoint = feed.DefaultConvertEndpoint
	}
	if cfg.Feed.Timeout.Duration == 0 {
		cfg.Feed.Timeout.Duration = DefaultTimeout
	}
	if cfg.Verify.Model == "" {
		cfg.Verify.Model = verify.DefaultModel
	}
	if cfg.Verify.APIKeyEnv == "" {
		cfg.Verify.APIKeyEnv = DefaultAPIKeyEnv
	}
}

func resolveEnv(cfg *Config) {
	if cfg.Verify.APIKeyEnv != "" {
		cfg.Verify.APIKey = os.Getenv(cfg.Verify.APIKeyEnv)
	}
}

func validate(cfg *Config) error {
	for i, src := range cfg.Sources {
		if src.Name == "" || src.URL == "" {
			return fmt.Errorf("sources[%d]: name and url are required", i)
		}
	}

	switch cfg.Feed.Mode {
	case "convert", "direct":
		// valid
	default:
		return fmt.Errorf("feed.mode: unknown mode %q (want convert or direct)", cfg.Feed.Mode)
	}

	if cfg.Feed.Timeout.Duration < 0 {
		return errors.New("feed.timeout: must not be negative")
	}

	return nil
}
