package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/tuido/internal/ui"
)

const (
	appName    = "tuido"
	configFile = "config.yaml"

	// CurrentVersion is the only config schema version understood.
	CurrentVersion = 1
)

// Backend names accepted in Storage.Backend.
const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

// Config is the on-disk configuration.
type Config struct {
	Version  int     `yaml:"version"`
	Storage  Storage `yaml:"storage"`
	Theme    string  `yaml:"theme"`
	LogLevel string  `yaml:"log_level,omitempty"`
	LogFile  string  `yaml:"log_file,omitempty"`
}

// Storage selects where the todo list lives.
type Storage struct {
	Backend string `yaml:"backend"`
	// Path of the data file. Empty means the backend's default file name in
	// the working directory.
	Path string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Storage: Storage{Backend: BackendFile},
		Theme:   "classic",
	}
}

// Dir returns the OS-appropriate configuration directory:
//   - Windows: %LOCALAPPDATA%\tuido
//   - elsewhere: $XDG_CONFIG_HOME/tuido or $HOME/.config/tuido
func Dir() (string, error) {
	if runtime.GOOS == "windows" {
		if d := os.Getenv("LOCALAPPDATA"); d != "" {
			return filepath.Join(d, appName), nil
		}
	}
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config at path, or at Path() when path is empty.
// A missing file yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks version, backend and theme. An empty theme means the
// default one.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	switch c.Storage.Backend {
	case BackendFile, BackendBolt:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Theme != "" && !ui.HasTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q (have %s)", c.Theme, strings.Join(ui.Themes, ", "))
	}
	return nil
}
