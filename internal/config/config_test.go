// ABOUTME: Tests for fittrack configuration management.
// ABOUTME: Covers load, save, defaults, backend selection, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "charm"}
	if got := cfg.GetBackend(); got != "charm" {
		t.Errorf("GetBackend() = %q, want %q", got, "charm")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/fittrack-test"}
	if got := cfg.GetDataDir(); got != "/tmp/fittrack-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/fittrack-test")
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~")
	if got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/fittrack")
	want := filepath.Join(home, "data/fittrack")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/fittrack\") = %q, want %q", got, want)
	}
}

func TestExpandPathRelative(t *testing.T) {
	if got := ExpandPath("data/fittrack"); got != "data/fittrack" {
		t.Errorf("ExpandPath(\"data/fittrack\") = %q, want %q", got, "data/fittrack")
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/fittrack-data"}
	got := cfg.GetDataDir()
	want := filepath.Join(home, "fittrack-data")
	if got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.Backend != "" {
		t.Errorf("Expected empty Backend, got %q", cfg.Backend)
	}
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg := &Config{
		Backend: "charm",
		DataDir: "/tmp/fittrack-data",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.Backend != "charm" {
		t.Errorf("Backend mismatch: got %q, want %q", loaded.Backend, "charm")
	}
	if loaded.DataDir != "/tmp/fittrack-data" {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, "/tmp/fittrack-data")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg := &Config{Backend: "sqlite"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "fittrack")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	configDir := filepath.Join(tmpDir, "fittrack")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	_, err := Load()
	if err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "fittrack", "config.json")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{
		Backend: "sqlite",
		DataDir: tmpDir,
	}

	st, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() for sqlite failed: %v", err)
	}
	defer st.Close()

	dbPath := filepath.Join(tmpDir, "fittrack.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected fittrack.db to be created")
	}
}

func TestOpenStoreInvalidBackend(t *testing.T) {
	cfg := &Config{
		Backend: "invalid",
		DataDir: "/tmp",
	}

	_, err := cfg.OpenStore()
	if err == nil {
		t.Error("Expected error for invalid backend")
	}
}

func TestOpenStoreDefaultBackend(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{
		DataDir: tmpDir,
	}

	st, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() with default backend failed: %v", err)
	}
	defer st.Close()

	dbPath := filepath.Join(tmpDir, "fittrack.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected sqlite backend by default")
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	cfg := &Config{}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}
