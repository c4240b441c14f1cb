// Package config loads runtime settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Seed     SeedConfig     `toml:"seed"`
	Logging  LoggingConfig  `toml:"logging"`
	View     ViewConfig     `toml:"view"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// SeedConfig points at the TOML file used to fill an empty database.
// An empty path seeds the built-in demo tasks.
type SeedConfig struct {
	Path string `toml:"path"`
}

type LoggingConfig struct {
	Level string `toml:"level"` // debug | info | warn | error
}

// ViewConfig holds defaults for a session that has no saved preferences.
type ViewConfig struct {
	ShowCompleted bool `toml:"show_completed"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Database: DatabaseConfig{
			Path: "./data/tasktracker.db",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		View: ViewConfig{
			ShowCompleted: true,
		},
	}
}

// Load decodes the TOML file at path over defaults. A missing or empty file
// leaves the defaults untouched.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, cfg.Validate()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, cfg.Validate()
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides file settings with PORT, DB_PATH, SEED_PATH and LOG_LEVEL
// when they are set.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		c.Server.Port = v
	}
	if v := strings.TrimSpace(getenv("DB_PATH")); v != "" {
		c.Database.Path = v
	}
	if v := strings.TrimSpace(getenv("SEED_PATH")); v != "" {
		c.Seed.Path = v
	}
	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
	return c.Validate()
}

func (c Config) Validate() error {
	port, err := strconv.Atoi(strings.TrimSpace(c.Server.Port))
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server.port: %q", c.Server.Port)
	}

	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database path is required")
	}

	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}

	return nil
}

// LogLevel returns the parsed logging level. Validate guarantees it parses.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// EnsureDataDir creates the directory holding the database file.
func (c Config) EnsureDataDir() error {
	if c.Database.Path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(c.Database.Path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
