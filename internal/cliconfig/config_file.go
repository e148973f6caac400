package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	TickInterval           string  `toml:"tick_interval"`
	QueueCapacity          int     `toml:"queue_capacity"`
	DecodeWorkers          int     `toml:"decode_workers"`
	DropLogEvery           int     `toml:"drop_log_every"`
	ShutdownTimeout        string  `toml:"shutdown_timeout"`
	DefaultZone            string  `toml:"default_zone"`
	BeatIntensityThreshold float64 `toml:"beat_intensity_threshold"`
	StatsInterval          string  `toml:"stats_interval"`
	WatchConfig            *bool   `toml:"watch_config"`
	LogLevel               string  `toml:"log_level"`
	LogFormat              string  `toml:"log_format"`

	Zones []FileZone `toml:"zones"`
}

// FileZone is the TOML shape of a zone definition.
type FileZone struct {
	ID              string     `toml:"id"`
	Origin          [3]float64 `toml:"origin"`
	Size            [3]float64 `toml:"size"`
	EntityRendering *bool      `toml:"entity_rendering"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.vizbridge/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".vizbridge", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setDuration("tick-interval", fc.TickInterval, &cfg.TickInterval); err != nil {
		return err
	}
	if err := s.setDuration("shutdown-timeout", fc.ShutdownTimeout, &cfg.ShutdownTimeout); err != nil {
		return err
	}
	if err := s.setDuration("stats-interval", fc.StatsInterval, &cfg.StatsInterval); err != nil {
		return err
	}

	s.setInt("queue-capacity", fc.QueueCapacity, &cfg.QueueCapacity)
	s.setInt("decode-workers", fc.DecodeWorkers, &cfg.DecodeWorkers)
	s.setInt("drop-log-every", fc.DropLogEvery, &cfg.DropLogEvery)

	s.setString("default-zone", fc.DefaultZone, &cfg.DefaultZone)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-format", fc.LogFormat, &cfg.LogFormat)

	s.setFloat("beat-threshold", fc.BeatIntensityThreshold, &cfg.BeatIntensityThreshold)

	s.setBool("watch-config", fc.WatchConfig, &cfg.WatchConfig)

	// Zone tables have no flag equivalent; the file is the only source.
	if len(fc.Zones) > 0 {
		zones := make([]ZoneConfig, 0, len(fc.Zones))
		for _, z := range fc.Zones {
			zc := ZoneConfig{
				ID:              z.ID,
				Origin:          z.Origin,
				Size:            z.Size,
				EntityRendering: true,
			}
			if z.EntityRendering != nil {
				zc.EntityRendering = *z.EntityRendering
			}
			zones = append(zones, zc)
		}
		cfg.Zones = zones
	}

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
