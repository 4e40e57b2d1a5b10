package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIURL is the production API endpoint.
	DefaultAPIURL = "https://ymirapp.com/api"

	settingsFileName = "config.yml"
)

// Settings holds the global CLI configuration. It is read from
// <dir>/config.yml and overridden by environment variables.
//
// Environment Variables:
//   - YMIR_API_URL (default: https://ymirapp.com/api)
//   - YMIR_API_TOKEN overrides the stored token
//   - YMIR_TEAM overrides the active team ID
//   - YMIR_CONFIG_DIR (default: ~/.ymir)
type Settings struct {
	APIURL   string
	Dir      string
	Timeouts *Timeouts

	stored        storedSettings
	tokenOverride string
	teamOverride  int
}

type storedSettings struct {
	Token      string `yaml:"token,omitempty"`
	ActiveTeam int    `yaml:"active_team,omitempty"`
}

// DefaultDir returns the directory holding the CLI settings.
func DefaultDir() (string, error) {
	if dir := os.Getenv("YMIR_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".ymir"), nil
}

// LoadSettings loads the settings from the default directory.
func LoadSettings() (*Settings, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(dir)
}

// LoadSettingsFrom loads the settings stored in dir. A missing file yields
// empty settings.
func LoadSettingsFrom(dir string) (*Settings, error) {
	s := &Settings{
		APIURL:        DefaultAPIURL,
		Dir:           dir,
		Timeouts:      LoadTimeouts(),
		tokenOverride: os.Getenv("YMIR_API_TOKEN"),
		teamOverride:  parseInt("YMIR_TEAM", 0),
	}
	if url := os.Getenv("YMIR_API_URL"); url != "" {
		s.APIURL = url
	}

	// #nosec G304
	data, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings %s: %w", s.path(), err)
	}
	return s, nil
}

func (s *Settings) path() string {
	return filepath.Join(s.Dir, settingsFileName)
}

// Token returns the API token, preferring YMIR_API_TOKEN.
func (s *Settings) Token() string {
	if s.tokenOverride != "" {
		return s.tokenOverride
	}
	return s.stored.Token
}

// ActiveTeam returns the ID of the active team, or 0 when none is selected.
func (s *Settings) ActiveTeam() int {
	if s.teamOverride != 0 {
		return s.teamOverride
	}
	return s.stored.ActiveTeam
}

// SetToken stores a new API token.
func (s *Settings) SetToken(token string) {
	s.stored.Token = token
}

// SetActiveTeam stores the active team.
func (s *Settings) SetActiveTeam(teamID int) {
	s.stored.ActiveTeam = teamID
}

// Save writes the stored settings to disk.
func (s *Settings) Save() error {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := yaml.Marshal(s.stored)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
