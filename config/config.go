package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mgillet/paceplan/core/metrics"
)

type Config struct {
	// ProjectsFile is the path of the project inventory.
	ProjectsFile string `json:"projects_file"`
	// MinProbability filters out projects unlikely to materialize. A
	// pointer keeps an explicit 0 (no filtering) distinct from unset.
	MinProbability *float64       `json:"min_probability"`
	Horizon        HorizonConfig  `json:"horizon"`
	History        HistoryConfig  `json:"history"`
	Metrics        metrics.Config `json:"metrics"`
}

// MinProb returns the configured probability threshold.
func (c Config) MinProb() float64 {
	if c.MinProbability == nil {
		return defaultMinProbability
	}
	return *c.MinProbability
}

const defaultMinProbability = 0.5

// HorizonConfig defines the default planning window.
type HorizonConfig struct {
	// Weeks is the number of weeks to schedule ahead.
	Weeks int `json:"weeks"`
	// Method selects the default allocation strategy.
	Method string `json:"method"`
}

// SetDefaults applies sane defaults.
func (c *HorizonConfig) SetDefaults() {
	if c.Weeks == 0 {
		c.Weeks = 26
	}
	if c.Method == "" {
		c.Method = "paced"
	}
}

// Validate checks mandatory fields.
func (c HorizonConfig) Validate() error {
	if c.Weeks <= 0 {
		return fmt.Errorf("horizon weeks must be positive, got %d", c.Weeks)
	}
	if c.Method != "paced" && c.Method != "frontload" {
		return fmt.Errorf("unknown method %s", c.Method)
	}
	return nil
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("PACEPLAN_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "paceplan_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies defaults on all sections.
func (c *Config) SetDefaults() {
	if c.ProjectsFile == "" {
		c.ProjectsFile = "projects.json"
	}
	if c.MinProbability == nil {
		v := defaultMinProbability
		c.MinProbability = &v
	}
	c.Horizon.SetDefaults()
	c.History.SetDefaults()
}

// Validate checks all sections.
func (c Config) Validate() error {
	if p := c.MinProb(); p < 0 || p > 1 {
		return fmt.Errorf("min_probability must be within [0,1], got %g", p)
	}
	if err := c.Horizon.Validate(); err != nil {
		return err
	}
	return c.History.Validate()
}
