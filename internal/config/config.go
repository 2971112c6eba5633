// Package config loads per-project codescope settings from a
// .codescope.toml or .codescope.yaml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileNames are the config file names searched for, in priority order.
var FileNames = []string{".codescope.toml", ".codescope.yaml", ".codescope.yml"}

// Config represents the structure of a .codescope.toml file.
type Config struct {
	// Exclude lists extra directory names to skip during traversal.
	Exclude []string `toml:"exclude" yaml:"exclude"`
	// IndentWidth is the number of spaces per tree level (0 = default).
	IndentWidth int `toml:"indent_width" yaml:"indent_width"`
	// ContextPrompt replaces the built-in context prompt when set.
	ContextPrompt string `toml:"context_prompt" yaml:"context_prompt"`
	// Defaults selects the sections used when no feature flag is given.
	Defaults *Features `toml:"defaults" yaml:"defaults"`
}

// Features mirrors the section flags of a report.
type Features struct {
	ContextPrompt bool `toml:"context_prompt" yaml:"context_prompt"`
	Readme        bool `toml:"readme" yaml:"readme"`
	Tree          bool `toml:"tree" yaml:"tree"`
	Inspection    bool `toml:"inspection" yaml:"inspection"`
	Docstrings    bool `toml:"docstrings" yaml:"docstrings"`
	FullContent   bool `toml:"full_content" yaml:"full_content"`
}

// Find searches for a config file starting from startDir and going up.
// Returns "" with a nil error when no config file exists.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil // Reached root, no config found
		}
		dir = parent
	}
}

// Load reads a config file. The format is chosen by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q: %s", ext, path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.IndentWidth < 0 {
		return fmt.Errorf("indent_width must be positive, got %d", c.IndentWidth)
	}
	for _, name := range c.Exclude {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("exclude entries must be single directory names, got %q", name)
		}
	}
	return nil
}

// Resolve loads the config at explicitPath, or the first config found from
// projectDir upward. Returns an empty Config when nothing is found.
func Resolve(explicitPath, projectDir string) (*Config, string, error) {
	path := explicitPath
	if path == "" {
		found, err := Find(projectDir)
		if err != nil {
			return nil, "", err
		}
		if found == "" {
			return &Config{}, "", nil
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
