package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ProjectFileName is the name of the project configuration file.
const ProjectFileName = "ymir.yml"

// ErrNoProject is returned when no project configuration file exists.
var ErrNoProject = errors.New("no " + ProjectFileName + " file found")

// ProjectConfig is the content of ymir.yml.
type ProjectConfig struct {
	ID           int                          `yaml:"id"`
	Name         string                       `yaml:"name"`
	Type         string                       `yaml:"type,omitempty"`
	Environments map[string]EnvironmentConfig `yaml:"environments"`
}

// EnvironmentConfig holds the per-environment settings of ymir.yml.
type EnvironmentConfig struct {
	Domain   []string `yaml:"domain,omitempty"`
	Database string   `yaml:"database,omitempty"`
	Cache    string   `yaml:"cache,omitempty"`
}

// NewProjectConfig creates a configuration for a new project with empty
// environments.
func NewProjectConfig(id int, name string, environments []string) *ProjectConfig {
	cfg := &ProjectConfig{
		ID:           id,
		Name:         name,
		Environments: make(map[string]EnvironmentConfig, len(environments)),
	}
	for _, env := range environments {
		cfg.Environments[env] = EnvironmentConfig{}
	}
	return cfg
}

// EnvironmentNames returns the configured environment names, sorted.
func (c *ProjectConfig) EnvironmentNames() []string {
	names := make([]string, 0, len(c.Environments))
	for name := range c.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasEnvironment reports whether name is configured.
func (c *ProjectConfig) HasEnvironment(name string) bool {
	_, ok := c.Environments[name]
	return ok
}

// Validate checks the required fields.
func (c *ProjectConfig) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("%s: id must be a positive integer", ProjectFileName)
	}
	if c.Name == "" {
		return fmt.Errorf("%s: name is required", ProjectFileName)
	}
	return nil
}

// LoadProject reads ymir.yml from dir. It returns ErrNoProject when the file
// does not exist.
func LoadProject(dir string) (*ProjectConfig, error) {
	path := filepath.Join(dir, ProjectFileName)

	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoProject
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteProject writes cfg to dir/ymir.yml.
func WriteProject(dir string, cfg *ProjectConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal project config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ProjectFileName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write project config: %w", err)
	}
	return nil
}
