package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigWithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("HOME", tempDir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	wantDB := filepath.Join(tempDir, ".tarefas", "tarefas.db")
	if cfg.Database.Path != wantDB {
		t.Errorf("Database path = %s, want %s", cfg.Database.Path, wantDB)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log level = %s, want info", cfg.Log.Level)
	}
	if cfg.Session.MarkdownStyle != "auto" {
		t.Errorf("Markdown style = %s, want auto", cfg.Session.MarkdownStyle)
	}
	if cfg.Theme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default %s", cfg.Theme.Accent, DefaultColorScheme().Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "tarefas")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `database:
  path: /tmp/custom.db
session:
  max_attempts: 3
theme:
  preset: monochrome
  accent: "#FF0000"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("Database path = %s, want /tmp/custom.db", cfg.Database.Path)
	}
	if cfg.Session.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.Session.MaxAttempts)
	}

	// Custom value wins, unspecified values come from the preset
	if cfg.Theme.Accent != "#FF0000" {
		t.Errorf("Accent = %s, want #FF0000", cfg.Theme.Accent)
	}
	if cfg.Theme.Title != MonochromeColorScheme().Title {
		t.Errorf("Title = %s, want monochrome %s", cfg.Theme.Title, MonochromeColorScheme().Title)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("database:\n  path: /from/file.db\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Setenv("TAREFAS_DB_PATH", "/from/env.db")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Database.Path != "/from/env.db" {
		t.Errorf("Database path = %s, want /from/env.db", cfg.Database.Path)
	}
}

func TestLoadConfig_EnvWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TAREFAS_LOG_LEVEL", "debug")
	t.Setenv("TAREFAS_MAX_ATTEMPTS", "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log level = %s, want debug", cfg.Log.Level)
	}
	if cfg.Session.MaxAttempts != 5 {
		t.Errorf("MaxAttempts = %d, want 5", cfg.Session.MaxAttempts)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() with a missing explicit path should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestLoadConfig_InvalidMarkdownStyle(t *testing.T) {
	t.Run("from environment", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("TAREFAS_MARKDOWN_STYLE", "neon")

		if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "session.markdown_style") {
			t.Errorf("Expected markdown style error, got %v", err)
		}
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("session:\n  markdown_style: dracula-ish\n"), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "dracula-ish") {
			t.Errorf("Expected markdown style error, got %v", err)
		}
	})

	t.Run("every listed style loads", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		for _, style := range MarkdownStyles {
			t.Setenv("TAREFAS_MARKDOWN_STYLE", style)
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load() with style %q failed: %v", style, err)
			}
			if cfg.Session.MarkdownStyle != style {
				t.Errorf("Markdown style = %s, want %s", cfg.Session.MarkdownStyle, style)
			}
		}
	})
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := Default()
	cfg.Database.Path = "/data/tasks.db"
	cfg.Session.MaxAttempts = 2

	path, err := cfg.Save("")
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	wantPath := filepath.Join(tempDir, "tarefas", "config.yaml")
	if path != wantPath {
		t.Errorf("Saved to %s, want %s", path, wantPath)
	}

	cfg2, err := Load("")
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.Database.Path != "/data/tasks.db" {
		t.Errorf("Reloaded database path = %s, want /data/tasks.db", cfg2.Database.Path)
	}
	if cfg2.Session.MaxAttempts != 2 {
		t.Errorf("Reloaded MaxAttempts = %d, want 2", cfg2.Session.MaxAttempts)
	}
}

func TestEnvDescription(t *testing.T) {
	desc, err := EnvDescription()
	if err != nil {
		t.Fatalf("EnvDescription() failed: %v", err)
	}

	for _, name := range []string{"TAREFAS_DB_PATH", "TAREFAS_LOG_LEVEL", "TAREFAS_MAX_ATTEMPTS"} {
		if !strings.Contains(desc, name) {
			t.Errorf("Expected description to mention %s", name)
		}
	}
}
