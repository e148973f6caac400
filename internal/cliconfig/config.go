package cliconfig

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultZoneID is the zone used when incoming messages omit one.
const DefaultZoneID = "main"

// ZoneConfig describes one renderable region of the world.
type ZoneConfig struct {
	ID              string
	Origin          [3]float64
	Size            [3]float64
	EntityRendering bool
}

// Config holds CLI configuration for vizbridge.
type Config struct {
	TickInterval    time.Duration
	QueueCapacity   int
	DecodeWorkers   int
	DropLogEvery    int
	ShutdownTimeout time.Duration

	DefaultZone            string
	BeatIntensityThreshold float64

	StatsInterval time.Duration
	WatchConfig   bool

	LogLevel  string
	LogFormat string

	Zones []ZoneConfig
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		TickInterval:           50 * time.Millisecond,
		QueueCapacity:          1000,
		DecodeWorkers:          2,
		DropLogEvery:           100,
		ShutdownTimeout:        5 * time.Second,
		DefaultZone:            DefaultZoneID,
		BeatIntensityThreshold: 0.30,
		StatsInterval:          30 * time.Second,
		LogLevel:               "info",
		LogFormat:              "console",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive")
	}
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("queue capacity must be positive")
	}
	if c.DecodeWorkers <= 0 {
		return fmt.Errorf("decode workers must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	if c.BeatIntensityThreshold < 0 || c.BeatIntensityThreshold > 1 {
		return fmt.Errorf("beat intensity threshold must be in [0, 1]")
	}
	if c.DefaultZone == "" {
		c.DefaultZone = DefaultZoneID
	}

	seen := make(map[string]bool, len(c.Zones))
	for _, z := range c.Zones {
		if z.ID == "" {
			return fmt.Errorf("zone id is required")
		}
		if seen[z.ID] {
			return fmt.Errorf("duplicate zone id %q", z.ID)
		}
		seen[z.ID] = true
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
