package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Device: DeviceConfig{
			Name:   "Vamp Player",
			Volume: 0.5,
		},
		Watch: WatchConfig{
			Interval: 2000,
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	if c.Device.Name == "" {
		c.Device.Name = d.Device.Name
	}
	if c.Device.Volume == 0 {
		c.Device.Volume = d.Device.Volume
	}
	if c.Watch.Interval == 0 {
		c.Watch.Interval = d.Watch.Interval
	}
}
