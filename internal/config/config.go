// Package config handles reading and writing .flashdeck/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .flashdeck/config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	Storage StorageConfig `yaml:"storage"`
	Remote  RemoteConfig  `yaml:"remote"`
	Server  ServerConfig  `yaml:"server"`
	Study   StudyConfig   `yaml:"study"`
	UI      UIConfig      `yaml:"ui"`
}

// StorageConfig locates the local SQLite deck database.
type StorageConfig struct {
	Path string `yaml:"path" env:"FLASHDECK_DB_PATH"` // relative paths resolve against the project root
}

// RemoteConfig points the client at a deck server instead of local storage.
type RemoteConfig struct {
	URL       string `yaml:"url"        env:"FLASHDECK_REMOTE_URL"` // empty means local storage
	TimeoutMs int    `yaml:"timeout_ms" env:"FLASHDECK_REMOTE_TIMEOUT_MS"`
}

// ServerConfig controls "flashdeck serve".
type ServerConfig struct {
	Addr string `yaml:"addr" env:"FLASHDECK_SERVER_ADDR"`
}

// StudyConfig selects the study session variant.
type StudyConfig struct {
	JumpNavigation   bool `yaml:"jump_navigation"    env:"FLASHDECK_JUMP_NAVIGATION"`
	LastCardEmphasis bool `yaml:"last_card_emphasis" env:"FLASHDECK_LAST_CARD_EMPHASIS"`
	JumpInterval     int  `yaml:"jump_interval"      env:"FLASHDECK_JUMP_INTERVAL"`
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	NoticeSeconds int `yaml:"notice_seconds" env:"FLASHDECK_NOTICE_SECONDS"`
}

const (
	configDir  = ".flashdeck"
	configFile = "config.yaml"
)

// Dir returns the .flashdeck directory inside the project root.
func Dir(root string) string {
	return filepath.Join(root, configDir)
}

// ReadConfig reads .flashdeck/config.yaml from the given project directory.
// dir is the project root (not .flashdeck/ itself).
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Load reads the project config, falling back to defaults when no config
// file exists, then applies FLASHDECK_* environment overrides and validates.
func Load(dir string) (*Config, error) {
	cfg, err := ReadConfig(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = DefaultConfig()
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WriteConfig writes cfg to .flashdeck/config.yaml in the given project directory.
// Creates the .flashdeck/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Study.JumpInterval <= 0 {
		return fmt.Errorf("study.jump_interval must be positive, got %d", c.Study.JumpInterval)
	}
	if c.Remote.TimeoutMs <= 0 {
		return fmt.Errorf("remote.timeout_ms must be positive, got %d", c.Remote.TimeoutMs)
	}
	if c.UI.NoticeSeconds <= 0 {
		return fmt.Errorf("ui.notice_seconds must be positive, got %d", c.UI.NoticeSeconds)
	}
	if c.Storage.Path == "" && c.Remote.URL == "" {
		return errors.New("either storage.path or remote.url is required")
	}
	return nil
}

// DatabasePath resolves Storage.Path against the project root.
func (c *Config) DatabasePath(root string) string {
	if filepath.IsAbs(c.Storage.Path) {
		return c.Storage.Path
	}
	return filepath.Join(root, c.Storage.Path)
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Storage: StorageConfig{
			Path: filepath.Join(configDir, "decks.db"),
		},
		Remote: RemoteConfig{
			TimeoutMs: 10000,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8787",
		},
		Study: StudyConfig{
			JumpNavigation:   true,
			LastCardEmphasis: true,
			JumpInterval:     10,
		},
		UI: UIConfig{
			NoticeSeconds: 4,
		},
	}
}
