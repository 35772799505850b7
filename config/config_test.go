package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %s", file, err)
	}
	return file
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.StringOrder != "hash" {
		t.Errorf("default string order should be hash, got %s", cfg.StringOrder)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected log settings: %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Globals["version"] != "1.0" {
		t.Errorf("version global expected, got %v", cfg.Globals["version"])
	}
	if _, ok := cfg.Globals["author"]; !ok {
		t.Errorf("author global expected")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		Name    string
		Content string
	}{
		{
			Name: "foxlang.yaml",
			Content: `
max_depth: 500
max_nesting: 64
string_order: lexical
log_level: debug
log_format: json
store: scripts.db
globals:
  version: "2.0"
  limit: 10
`,
		},
		{
			Name: "foxlang.toml",
			Content: `
max_depth = 500
max_nesting = 64
string_order = "lexical"
log_level = "debug"
log_format = "json"
store = "scripts.db"

[globals]
version = "2.0"
limit = 10
`,
		},
	}
	for _, c := range tests {
		cfg, err := Load(writeFile(t, c.Name, c.Content))
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.Name, err)
			continue
		}
		if cfg.MaxDepth != 500 || cfg.MaxNesting != 64 {
			t.Errorf("%s: limits not decoded: %d/%d", c.Name, cfg.MaxDepth, cfg.MaxNesting)
		}
		if cfg.StringOrder != "lexical" || cfg.Store != "scripts.db" {
			t.Errorf("%s: settings not decoded: %s/%s", c.Name, cfg.StringOrder, cfg.Store)
		}
		if level, err := cfg.Level(); err != nil || level != slog.LevelDebug {
			t.Errorf("%s: debug level expected, got %s (%v)", c.Name, level, err)
		}
		if cfg.Globals["version"] != "2.0" {
			t.Errorf("%s: version should be overridden, got %v", c.Name, cfg.Globals["version"])
		}
		if _, ok := cfg.Globals["author"]; !ok {
			t.Errorf("%s: author default expected", c.Name)
		}
		if _, ok := cfg.Globals["limit"]; !ok {
			t.Errorf("%s: limit global expected", c.Name)
		}
	}
}

func TestLoadError(t *testing.T) {
	tests := []struct {
		Name    string
		Content string
		Err     error
	}{
		{Name: "foxlang.ini", Content: "max_depth=1", Err: ErrFormat},
		{Name: "missing.yaml", Err: os.ErrNotExist},
		{Name: "bad.yaml", Content: "string_order: random"},
		{Name: "bad.toml", Content: `log_format = "xml"`},
		{Name: "level.toml", Content: `log_level = "loud"`},
		{Name: "unknown.yaml", Content: "colors: true"},
		{Name: "unknown.toml", Content: "colors = true"},
	}
	for _, c := range tests {
		file := filepath.Join(t.TempDir(), c.Name)
		if c.Content != "" {
			file = writeFile(t, c.Name, c.Content)
		}
		_, err := Load(file)
		if err == nil {
			t.Errorf("%s: expected error but loading succeeded", c.Name)
			continue
		}
		if c.Err != nil && !errors.Is(err, c.Err) {
			t.Errorf("%s: errors mismatched! want %s, got %s", c.Name, c.Err, err)
		}
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, "")
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.StringOrder != "hash" {
		t.Errorf("default config expected without %s", EnvConfig)
	}

	t.Setenv(EnvConfig, writeFile(t, "env.yml", "max_depth: 42"))
	if cfg, err = LoadFromEnv(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.MaxDepth != 42 {
		t.Errorf("config from %s expected, got max_depth %d", EnvConfig, cfg.MaxDepth)
	}
}
