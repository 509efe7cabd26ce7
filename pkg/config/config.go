// Package config resolves the process-wide pipeline configuration once
// at startup: provider, credential, model override, and the mock-mode
// flag. Values come from an optional YAML file with environment
// variables taking precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/insightstream/strategy-ai/pkg/llm"
)

// Config holds the resolved settings. It is read-only after Load; the
// pipeline never mutates it.
type Config struct {
	Provider    llm.Provider `yaml:"provider"`
	APIKey      string       `yaml:"api_key"`
	Model       string       `yaml:"model"`
	UseMockData bool         `yaml:"use_mock_data"`
	ReportsDir  string       `yaml:"reports_dir"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".strategy-ai", "config.yaml")
}

// Load reads the YAML file at path (if it exists) and applies
// environment overrides. An empty path means the default location. Load
// never fails on a missing file; it fails on an unreadable or malformed
// one.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.ReportsDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.ReportsDir = filepath.Join(home, ".strategy-ai", "reports")
		}
	}

	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values. Provider
// is inferred from whichever credential is present when not set
// explicitly.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.Provider = llm.Provider(strings.ToLower(v))
	}
	if v := os.Getenv("AI_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("USE_MOCK_DATA"); v != "" {
		c.UseMockData = v == "true" || v == "1"
	}
	if v := os.Getenv("STRATEGY_AI_REPORTS_DIR"); v != "" {
		c.ReportsDir = v
	}

	perplexityKey := os.Getenv("PERPLEXITY_API_KEY")
	openRouterKey := os.Getenv("OPENROUTER_API_KEY")

	switch c.Provider {
	case llm.ProviderPerplexity:
		if perplexityKey != "" {
			c.APIKey = perplexityKey
		}
	case llm.ProviderOpenRouter:
		if openRouterKey != "" {
			c.APIKey = openRouterKey
		}
	case "":
		// No explicit provider: infer from whichever key is set,
		// preferring perplexity for parity with the roadmap flow.
		if perplexityKey != "" {
			c.Provider = llm.ProviderPerplexity
			c.APIKey = perplexityKey
		} else if openRouterKey != "" {
			c.Provider = llm.ProviderOpenRouter
			c.APIKey = openRouterKey
		} else {
			c.Provider = llm.ProviderPerplexity
		}
	}
}

// NewClient builds the configured LLM client. Mock mode never reaches
// here; callers construct the mock service instead.
func (c *Config) NewClient() (llm.Client, error) {
	return llm.New(c.Provider, c.APIKey, c.Model)
}
