// Package appconfig loads the application configuration from YAML with
// defaults, a config_version gate, and environment expansion of path values.
package appconfig

import (
	"os"
	"path/filepath"
	"time"

	"github.com/coderoom-dev/coderoom/schema"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int           `mapstructure:"config_version" yaml:"config_version"`
	Service       ServiceConfig `mapstructure:"service" yaml:"service"`
	Seed          SeedConfig    `mapstructure:"seed" yaml:"seed"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// ServiceConfig controls core service behavior.
type ServiceConfig struct {
	TranscriptMaxLines int    `mapstructure:"transcript_max_lines" yaml:"transcript_max_lines"`
	Prompt             string `mapstructure:"prompt" yaml:"prompt"`
	WorkingDir         string `mapstructure:"working_dir" yaml:"working_dir"`
	RunDelayMS         int    `mapstructure:"run_delay_ms" yaml:"run_delay_ms"`
	JSTimeoutSeconds   int    `mapstructure:"js_timeout_seconds" yaml:"js_timeout_seconds"`
}

// SeedConfig points at an optional seed manifest. An empty manifest path uses
// the embedded starter workspace.
type SeedConfig struct {
	Manifest string `mapstructure:"manifest" yaml:"manifest"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() (Config, error) {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Service: ServiceConfig{
			TranscriptMaxLines: schema.DefaultTranscriptMaxLines,
			Prompt:             schema.DefaultPrompt,
			WorkingDir:         schema.DefaultWorkingDir,
			RunDelayMS:         1000,
			JSTimeoutSeconds:   int(schema.DefaultJSTimeout / time.Second),
		},
		Seed: SeedConfig{Manifest: ""},
	}, nil
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".coderoom", "config.yaml"), nil
}

// ToServiceConfig converts the loaded values to the core service config.
func (c Config) ToServiceConfig() schema.ServiceConfig {
	return schema.ServiceConfig{
		TranscriptMaxLines: c.Service.TranscriptMaxLines,
		Prompt:             c.Service.Prompt,
		WorkingDir:         c.Service.WorkingDir,
		RunDelay:           time.Duration(c.Service.RunDelayMS) * time.Millisecond,
		JSTimeout:          time.Duration(c.Service.JSTimeoutSeconds) * time.Second,
	}
}
