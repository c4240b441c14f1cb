package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	defaults := Default()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"), defaults)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != defaults {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("", Default())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "8080" || !cfg.View.ShowCompleted {
		t.Fatalf("unexpected config %#v", cfg)
	}
}

func TestLoadOverridesValues(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.toml")
	content := `
[server]
port = "9090"

[database]
path = "/tmp/custom.db"

[seed]
path = "/tmp/seed.toml"

[logging]
level = "debug"

[view]
show_completed = false
`
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(p, Default())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("unexpected port %q", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Fatalf("unexpected db path %q", cfg.Database.Path)
	}
	if cfg.Seed.Path != "/tmp/seed.toml" {
		t.Fatalf("unexpected seed path %q", cfg.Seed.Path)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Fatalf("unexpected log level %v", cfg.LogLevel())
	}
	if cfg.View.ShowCompleted {
		t.Fatal("expected show_completed=false")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "bad toml", content: "[server\nport = 1", errMsg: "decode toml"},
		{name: "bad port", content: "[server]\nport = \"http\"\n", errMsg: "invalid server.port"},
		{name: "port out of range", content: "[server]\nport = \"70000\"\n", errMsg: "invalid server.port"},
		{name: "empty db path", content: "[database]\npath = \" \"\n", errMsg: "database path is required"},
		{name: "bad log level", content: "[logging]\nlevel = \"loud\"\n", errMsg: "invalid logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(p, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			_, err := Load(p, Default())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Fatalf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORT":      "3000",
		"DB_PATH":   "/data/tasks.db",
		"SEED_PATH": "/data/seed.toml",
		"LOG_LEVEL": "warn",
	}
	cfg := Default()

	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Server.Port != "3000" || cfg.Database.Path != "/data/tasks.db" || cfg.Seed.Path != "/data/seed.toml" {
		t.Fatalf("unexpected config %#v", cfg)
	}
	if cfg.LogLevel() != log.WarnLevel {
		t.Fatalf("unexpected log level %v", cfg.LogLevel())
	}

	untouched := Default()
	if err := untouched.ApplyEnv(func(string) string { return "" }); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if untouched != Default() {
		t.Fatalf("expected defaults to be kept, got %#v", untouched)
	}

	bad := Default()
	if err := bad.ApplyEnv(func(k string) string {
		if k == "PORT" {
			return "0"
		}
		return ""
	}); err == nil {
		t.Fatal("expected invalid PORT to be rejected")
	}
}

func TestEnsureDataDir(t *testing.T) {
	cfg := Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "dir", "tasks.db")

	if err := cfg.EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir() error = %v", err)
	}
	if _, err := os.Stat(filepath.Dir(cfg.Database.Path)); err != nil {
		t.Fatalf("expected data dir to exist: %v", err)
	}

	cfg.Database.Path = ":memory:"
	if err := cfg.EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir() for memory db error = %v", err)
	}
}
