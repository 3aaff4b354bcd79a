package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/tagz/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Render.Indent != DefaultIndent {
		t.Errorf("Render.Indent = %q, want %q", cfg.Render.Indent, DefaultIndent)
	}
	if cfg.Render.ChunkSize != DefaultChunkSize {
		t.Errorf("Render.ChunkSize = %d, want %d", cfg.Render.ChunkSize, DefaultChunkSize)
	}
	if cfg.Server.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Errorf("Server.MaxBodyBytes = %d, want %d", cfg.Server.MaxBodyBytes, DefaultMaxBodyBytes)
	}
	if cfg.PublishEnabled() {
		t.Error("publishing should be disabled by default")
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvRegion, "")
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	if !errors.Is(err, errors.New("E110")) {
		t.Errorf("expected E110 for missing config, got %v", err)
	}

	configJSON := `{
  "render": {
    "pretty": true,
    "indent": "  "
  },
  "server": {
    "host": "0.0.0.0",
    "port": 9000
  },
  "publish": {
    "bucket": "site",
    "prefix": "pages/"
  }
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if !cfg.Render.Pretty {
		t.Error("Render.Pretty should be true")
	}
	if cfg.Render.Indent != "  " {
		t.Errorf("Render.Indent = %q, want %q", cfg.Render.Indent, "  ")
	}
	if cfg.Render.ChunkSize != DefaultChunkSize {
		t.Errorf("Render.ChunkSize = %d, want default %d", cfg.Render.ChunkSize, DefaultChunkSize)
	}
	if cfg.Address() != "0.0.0.0:9000" {
		t.Errorf("Address() = %q, want %q", cfg.Address(), "0.0.0.0:9000")
	}
	if !cfg.PublishEnabled() || cfg.Publish.Prefix != "pages/" {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if cfg.Publish.Region != DefaultRegion {
		t.Errorf("Publish.Region = %q, want %q", cfg.Publish.Region, DefaultRegion)
	}
	if cfg.Path() != filepath.Join(tmpDir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("{invalid"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !errors.Is(err, errors.New("E111")) {
		t.Errorf("expected E111, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "9999")
	t.Setenv(EnvRegion, "eu-central-1")

	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Publish.Region != "eu-central-1" {
		t.Errorf("Publish.Region = %q, want eu-central-1", cfg.Publish.Region)
	}
}

func TestEnvOverrides_InvalidPort(t *testing.T) {
	t.Setenv(EnvPort, "http")

	_, err := LoadOrDefault(t.TempDir())
	if !errors.Is(err, errors.New("E112")) {
		t.Errorf("expected E112, got %v", err)
	}
}

func TestSaveTo(t *testing.T) {
	t.Setenv(EnvPort, "")
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := New()
	cfg.Server.Port = 7000
	cfg.Publish.Bucket = "docs"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Error("saved file should end with a newline")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Server.Port != 7000 || loaded.Publish.Bucket != "docs" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, true},
		{"negative body limit", func(c *Config) { c.Server.MaxBodyBytes = -5 }, true},
		{"negative chunk size", func(c *Config) { c.Render.ChunkSize = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.New("E112")) {
				t.Errorf("expected E112, got %v", err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Server.Port != DefaultPort || cfg.Server.Host != DefaultHost {
		t.Errorf("server defaults not applied: %+v", cfg.Server)
	}
	if cfg.Render.Indent != DefaultIndent || cfg.Render.ChunkSize != DefaultChunkSize {
		t.Errorf("render defaults not applied: %+v", cfg.Render)
	}
	if cfg.Publish.Region != DefaultRegion {
		t.Errorf("publish defaults not applied: %+v", cfg.Publish)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir) {
		t.Error("Exists should be false for empty dir")
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(dir) {
		t.Error("Exists should be true after creating file")
	}
}
