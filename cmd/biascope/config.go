package main

import (
	"fmt"
	"os"
	"time"

	"github.com/awalczyk/biascope"
	bsexec "github.com/awalczyk/biascope/exec"
	"gopkg.in/yaml.v3"
)

// Engine names accepted in the analyzer config.
const (
	engineProgram = "program"
	engineGemini  = "gemini"
)

// Config is the analyzer registry file. Which program serves which kind
// is configuration data, not a hard-coded constant.
type Config struct {
	// TimeoutSeconds bounds one analyzer run. Zero uses the default.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	Analyzers map[string]AnalyzerConfig `yaml:"analyzers"`
}

// AnalyzerConfig describes how one analyzer kind is served.
type AnalyzerConfig struct {
	// Engine is "program" (external process, the default) or "gemini".
	Engine string `yaml:"engine"`

	// Program engine fields.
	Command   string   `yaml:"command"`
	Args      []string `yaml:"args"`
	ModelFlag string   `yaml:"model_flag"`

	// Gemini engine field.
	Model string `yaml:"model"`
}

// Timeout returns the configured per-run deadline.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return bsexec.DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks kinds and engines.
func (c *Config) Validate() error {
	for name, ac := range c.Analyzers {
		if _, err := biascope.ParseAnalyzerKind(name); err != nil {
			return err
		}
		switch ac.Engine {
		case "", engineProgram:
			if ac.Command == "" {
				return biascope.Errorf(biascope.EINVALID, "analyzer %q: command required", name)
			}
		case engineGemini:
		default:
			return biascope.Errorf(biascope.EINVALID, "analyzer %q: unknown engine %q", name, ac.Engine)
		}
	}
	return nil
}

// ProgramRegistry returns the subprocess registry for kinds served by the
// program engine.
func (c *Config) ProgramRegistry() bsexec.Registry {
	registry := bsexec.Registry{}
	for name, ac := range c.Analyzers {
		if ac.Engine != "" && ac.Engine != engineProgram {
			continue
		}
		registry[biascope.AnalyzerKind(name)] = bsexec.Program{
			Command:   ac.Command,
			Args:      ac.Args,
			ModelFlag: ac.ModelFlag,
		}
	}
	return registry
}

// GeminiKinds returns the kinds served by the gemini engine, with their
// configured models.
func (c *Config) GeminiKinds() map[biascope.AnalyzerKind]string {
	kinds := map[biascope.AnalyzerKind]string{}
	for name, ac := range c.Analyzers {
		if ac.Engine == engineGemini {
			kinds[biascope.AnalyzerKind(name)] = ac.Model
		}
	}
	return kinds
}

// DefaultConfig returns the registry used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Analyzers: map[string]AnalyzerConfig{
			"lexicon":     {Command: "bias-analyzer-lexicon"},
			"transformer": {Command: "bias-analyzer-transformer", ModelFlag: "--model"},
			"llm":         {Command: "bias-analyzer-bert"},
		},
	}
}

// LoadConfig reads the yaml config at path. A missing file yields the
// default config; a malformed one is an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read analyzer config %q: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse analyzer config %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
