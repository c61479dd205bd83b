package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".wordcount"

// xdgConfigFile is the configuration file name inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .wordcount configuration file.
// Every field is optional; zero values leave the built-in default in place.
type File struct {
	// Threads overrides DefaultThreads.
	Threads int `yaml:"threads,omitempty"`

	// Trials overrides DefaultTrials.
	Trials int `yaml:"trials,omitempty"`

	// Top overrides DefaultTopK.
	Top int `yaml:"top,omitempty"`

	// Format selects the default report format: text, json or markdown.
	Format Format `yaml:"format,omitempty"`
}

// Validate checks the values read from the file.
func (f *File) Validate() error {
	if f.Threads < 0 {
		return ErrInvalidThreads
	}
	if f.Trials < 0 {
		return ErrInvalidTrials
	}
	if f.Top < 0 {
		return ErrInvalidTopK
	}
	switch f.Format {
	case "", FormatText, FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, f.Format)
	}
	return nil
}

// Apply copies the non-zero values of f into cfg.
func (f *File) Apply(cfg *Config) {
	if f.Threads > 0 {
		cfg.Threads = f.Threads
	}
	if f.Trials > 0 {
		cfg.Trials = f.Trials
	}
	if f.Top > 0 {
		cfg.TopK = f.Top
	}
	if f.Format != "" {
		cfg.SetFormat(f.Format)
	}
}

// LoadConfigFile loads and validates a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if err := cf.Validate(); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .wordcount in the current directory
// 3. Look for .wordcount in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
