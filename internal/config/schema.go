package config

// Config is the root configuration structure.
type Config struct {
	Spotify SpotifyConfig `toml:"spotify"`
	Device  DeviceConfig  `toml:"device"`
	Watch   WatchConfig   `toml:"watch"`
}

// SpotifyConfig holds Web API settings. The token is supplied by the user;
// acquisition and refresh happen outside this tool.
type SpotifyConfig struct {
	Token   string `toml:"token"`
	BaseURL string `toml:"base_url"`
}

// DeviceConfig holds the identity the playback device announces.
type DeviceConfig struct {
	Name   string  `toml:"name"`
	Volume float64 `toml:"volume"` // initial volume in [0, 1]
}

// WatchConfig holds settings for the now-playing watch view.
type WatchConfig struct {
	Interval int `toml:"interval"` // poll interval in milliseconds
}
