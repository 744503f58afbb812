// Package projectconfig provides the ProjectConfig struct and loader for
// .nexsim.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	DefaultDataDir          = "data/"
	DefaultPoliciesFile     = "data/policies.json"
	DefaultPillarsFile      = "data/pillars.json"
	DefaultLabsFile         = "data/livinglab.json"
	DefaultInterventionsDir = "data/interventions"

	DefaultLab    = "Tunis"
	DefaultFormat = "table"
)

// PathsConfig holds locations of the reference datasets.
type PathsConfig struct {
	Data          string `yaml:"data,omitempty"`
	Policies      string `yaml:"policies,omitempty"`
	Pillars       string `yaml:"pillars,omitempty"`
	Labs          string `yaml:"labs,omitempty"`
	Interventions string `yaml:"interventions,omitempty"`
}

// DefaultsConfig holds default session parameters.
type DefaultsConfig struct {
	Lab    string `yaml:"lab,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .nexsim.yaml.
type ProjectConfig struct {
	Paths    PathsConfig        `yaml:"paths,omitempty"`
	Defaults DefaultsConfig     `yaml:"defaults,omitempty"`
	Weights  map[string]float64 `yaml:"weights,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Data:          DefaultDataDir,
			Policies:      DefaultPoliciesFile,
			Pillars:       DefaultPillarsFile,
			Labs:          DefaultLabsFile,
			Interventions: DefaultInterventionsDir,
		},
		Defaults: DefaultsConfig{
			Lab:    DefaultLab,
			Format: DefaultFormat,
		},
	}
}

// Load finds .nexsim.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading .nexsim.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .nexsim.yaml: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .nexsim.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".nexsim.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Paths.Data != "" {
		dst.Paths.Data = src.Paths.Data
	}
	if src.Paths.Policies != "" {
		dst.Paths.Policies = src.Paths.Policies
	}
	if src.Paths.Pillars != "" {
		dst.Paths.Pillars = src.Paths.Pillars
	}
	if src.Paths.Labs != "" {
		dst.Paths.Labs = src.Paths.Labs
	}
	if src.Paths.Interventions != "" {
		dst.Paths.Interventions = src.Paths.Interventions
	}

	if src.Defaults.Lab != "" {
		dst.Defaults.Lab = src.Defaults.Lab
	}
	if src.Defaults.Format != "" {
		dst.Defaults.Format = src.Defaults.Format
	}

	if src.Weights != nil {
		dst.Weights = src.Weights
	}
}
