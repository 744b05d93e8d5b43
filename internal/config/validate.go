package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Spotify.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("spotify: %w", err))
	}
	if err := c.Device.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("device: %w", err))
	}
	if err := c.Watch.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("watch: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks SpotifyConfig for errors.
func (c *SpotifyConfig) Validate() error {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid base_url scheme: %s", u.Scheme)
		}
	}
	return nil
}

// Validate checks DeviceConfig for errors.
func (c *DeviceConfig) Validate() error {
	if c.Volume < 0 || c.Volume > 1 {
		return errors.New("volume must be between 0 and 1")
	}
	return nil
}

// Validate checks WatchConfig for errors.
func (c *WatchConfig) Validate() error {
	if c.Interval < 0 {
		return errors.New("interval must be non-negative")
	}
	return nil
}
