package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the whole client configuration, loaded once at startup.
// There is a single auth context (API.Session); nothing else in the
// program holds credentials.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Calendar CalendarConfig `yaml:"calendar"`
	Cache    CacheConfig    `yaml:"cache"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Session is the session-cookie value issued by the backend login
	// flow. Obtaining it is outside this client; paste it here or set
	// GRIND_SESSION.
	Session string `yaml:"session"`
}

type CalendarConfig struct {
	// Sync enables best-effort mirroring of deadlines into the external
	// calendar after task operations.
	Sync bool `yaml:"sync"`
}

type CacheConfig struct {
	// Enabled keeps an offline snapshot of the last fetched task list
	// in a local sqlite database for `grind ls --cached`.
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api",
		},
		Calendar: CalendarConfig{Sync: false},
		Cache:    CacheConfig{Enabled: true},
	}
}

// Load reads ~/.grind/config.yaml, falling back to defaults when the
// file is absent, then applies GRIND_API_URL and GRIND_SESSION env
// overrides.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if v := os.Getenv("GRIND_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("GRIND_SESSION"); v != "" {
		cfg.API.Session = v
	}

	return cfg, nil
}

// Path returns the config file location (~/.grind/config.yaml).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".grind", "config.yaml"), nil
}

// WriteDefault writes a commented default configuration to path,
// creating the directory if needed.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	content := `# grind configuration

api:
  # Base URL of the study-dashboard backend
  base_url: http://localhost:8080/api
  # Session cookie value from the backend login flow.
  # GRIND_SESSION overrides this.
  session: ""

calendar:
  # Mirror task deadlines into the external calendar (best effort).
  # Requires granted calendar permissions; see 'grind calendar'.
  sync: false

cache:
  # Keep an offline snapshot of the task list for 'grind ls --cached'
  enabled: true
`
	return os.WriteFile(path, []byte(content), 0644)
}
