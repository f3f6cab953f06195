package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags and environment variables.
type FileConfig struct {
	Site struct {
		URL string `yaml:"url" json:"url"`
		UA  string `yaml:"ua" json:"ua"`
	} `yaml:"site" json:"site"`

	Search struct {
		URL       string   `yaml:"url" json:"url"`
		File      string   `yaml:"file" json:"file"`
		Len       int      `yaml:"len" json:"len"`
		Threshold *float64 `yaml:"threshold" json:"threshold"`
	} `yaml:"search" json:"search"`

	// Timeout is a duration string such as "10s".
	Timeout string `yaml:"timeout" json:"timeout"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from fc into cfg for fields still at their
// defaults. Flags should already have been parsed; this lets file config
// supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig, defaults Config) {
	if cfg == nil {
		return
	}
	if fc.Site.URL != "" && cfg.SiteURL == defaults.SiteURL {
		cfg.SiteURL = fc.Site.URL
	}
	if fc.Site.UA != "" && cfg.UserAgent == defaults.UserAgent {
		cfg.UserAgent = fc.Site.UA
	}
	if fc.Search.URL != "" && cfg.SearchURL == defaults.SearchURL {
		cfg.SearchURL = fc.Search.URL
	}
	if fc.Search.File != "" && cfg.SearchFile == defaults.SearchFile {
		cfg.SearchFile = fc.Search.File
	}
	if fc.Search.Len > 0 && cfg.MaxResults == defaults.MaxResults {
		cfg.MaxResults = fc.Search.Len
	}
	if fc.Search.Threshold != nil && cfg.Threshold == defaults.Threshold {
		cfg.Threshold = *fc.Search.Threshold
	}
	if fc.Timeout != "" && cfg.Timeout == defaults.Timeout {
		if d, err := time.ParseDuration(fc.Timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
