package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[spotify]
token = "tok123"

[device]
name = "Kitchen"
volume = 0.8
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Spotify.Token != "tok123" {
		t.Errorf("Token = %q, want tok123", cfg.Spotify.Token)
	}
	if cfg.Device.Name != "Kitchen" {
		t.Errorf("Name = %q, want Kitchen", cfg.Device.Name)
	}
	if cfg.Device.Volume != 0.8 {
		t.Errorf("Volume = %v, want 0.8", cfg.Device.Volume)
	}
	// Defaults fill unset sections.
	if cfg.Watch.Interval != 2000 {
		t.Errorf("Watch.Interval = %d, want default 2000", cfg.Watch.Interval)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VAMP_SPOTIFY_TOKEN", "env-token")
	t.Setenv("VAMP_DEVICE_NAME", "Env Player")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.Spotify.Token != "env-token" {
		t.Errorf("Token = %q, want env-token", cfg.Spotify.Token)
	}
	if cfg.Device.Name != "Env Player" {
		t.Errorf("Name = %q, want Env Player", cfg.Device.Name)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}

	cfg.Device.Volume = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for volume > 1")
	}

	cfg = Default()
	cfg.Spotify.BaseURL = "ftp://nope"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for non-http base_url")
	}
}
