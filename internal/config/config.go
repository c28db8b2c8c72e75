package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for dotsentry. Fields are
// pointers so the precedence helpers can tell "unset" from "set to zero".
type FileConfig struct {
	// scan
	Include          *string  `yaml:"include"`
	Exclude          *string  `yaml:"exclude"`
	MaxBytes         *int64   `yaml:"max_bytes"`
	Threads          *int     `yaml:"threads"`
	FailOn           *string  `yaml:"fail_on"`
	EntropyThreshold *float64 `yaml:"entropy_threshold"`
	Baseline         *string  `yaml:"baseline"`
	DefaultExcludes  *bool    `yaml:"default_excludes"`
	NoColor          *bool    `yaml:"no_color"`
	Redact           *bool    `yaml:"redact"`
	MinTokenLength   *int     `yaml:"min_token_length"`
	Placeholders     *bool    `yaml:"ignore_placeholders"`

	// validate
	EnvFile         *string `yaml:"env_file"`
	TemplateFile    *string `yaml:"template_file"`
	Strict          *bool   `yaml:"strict"`
	Production      *bool   `yaml:"production"`
	MinSecretLength *int    `yaml:"min_secret_length"`

	// parser
	Expansion      *bool `yaml:"expansion"`
	InlineComments *bool `yaml:"inline_comments"`
	ExpansionDepth *int  `yaml:"expansion_depth"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .dotsentry.yml/.yaml and dotsentry.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".dotsentry.yml", ".dotsentry.yaml", "dotsentry.yml", "dotsentry.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "dotsentry", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
