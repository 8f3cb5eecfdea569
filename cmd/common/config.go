package common

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds persistent defaults for playback. Command line flags take
// precedence over these values.
type Config struct {
	WPM        float64 `toml:"wpm"`
	Frequency  float64 `toml:"frequency"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
	Backend    string  `toml:"backend"`
	LeadInMs   int     `toml:"lead_in_ms"`
}

func DefaultConfig() Config {
	return Config{
		WPM:        20,
		Frequency:  700, // Hz - standard morse tone
		Volume:     0.5,
		SampleRate: 44100,
		Backend:    "auto",
		LeadInMs:   100,
	}
}

// LoadConfig reads the config at path on top of DefaultConfig. A missing file
// is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.WPM <= 0:
		return fmt.Errorf("wpm must be positive, got %v", c.WPM)
	case c.Frequency <= 0:
		return fmt.Errorf("frequency must be positive, got %v", c.Frequency)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("volume must be between 0 and 1, got %v", c.Volume)
	case c.SampleRate <= 0:
		return fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	case c.LeadInMs < 0:
		return fmt.Errorf("lead_in_ms must not be negative, got %d", c.LeadInMs)
	}
	return nil
}
