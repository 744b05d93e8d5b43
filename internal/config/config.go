package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment
// overrides. Search order: ~/.vamprc, $XDG_CONFIG_HOME/vamp/config.toml,
// ~/.config/vamp/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".vamprc"),
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "vamp", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VAMP_SPOTIFY_TOKEN"); v != "" {
		cfg.Spotify.Token = v
	}
	if v := os.Getenv("VAMP_SPOTIFY_BASE_URL"); v != "" {
		cfg.Spotify.BaseURL = v
	}
	if v := os.Getenv("VAMP_DEVICE_NAME"); v != "" {
		cfg.Device.Name = v
	}
	if v := os.Getenv("VAMP_DEVICE_VOLUME"); v != "" {
		if vol, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Device.Volume = vol
		}
	}
	if v := os.Getenv("VAMP_WATCH_INTERVAL"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			cfg.Watch.Interval = iv
		}
	}
}
