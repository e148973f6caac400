package cliconfig

import "os"

// ApplyEnvConfig applies VIZBRIDGE_* environment variables to the Config.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setDuration("tick-interval", os.Getenv("VIZBRIDGE_TICK_INTERVAL"), &cfg.TickInterval); err != nil {
		return err
	}
	if err := s.setDuration("shutdown-timeout", os.Getenv("VIZBRIDGE_SHUTDOWN_TIMEOUT"), &cfg.ShutdownTimeout); err != nil {
		return err
	}
	if err := s.setDuration("stats-interval", os.Getenv("VIZBRIDGE_STATS_INTERVAL"), &cfg.StatsInterval); err != nil {
		return err
	}

	if err := s.setIntFromString("queue-capacity", os.Getenv("VIZBRIDGE_QUEUE_CAPACITY"), &cfg.QueueCapacity); err != nil {
		return err
	}
	if err := s.setIntFromString("decode-workers", os.Getenv("VIZBRIDGE_DECODE_WORKERS"), &cfg.DecodeWorkers); err != nil {
		return err
	}
	if err := s.setIntFromString("drop-log-every", os.Getenv("VIZBRIDGE_DROP_LOG_EVERY"), &cfg.DropLogEvery); err != nil {
		return err
	}

	if err := s.setFloatFromString("beat-threshold", os.Getenv("VIZBRIDGE_BEAT_THRESHOLD"), &cfg.BeatIntensityThreshold); err != nil {
		return err
	}

	s.setString("default-zone", os.Getenv("VIZBRIDGE_DEFAULT_ZONE"), &cfg.DefaultZone)
	s.setString("log-level", os.Getenv("VIZBRIDGE_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("VIZBRIDGE_LOG_FORMAT"), &cfg.LogFormat)

	s.setBoolFromString("watch-config", os.Getenv("VIZBRIDGE_WATCH_CONFIG"), &cfg.WatchConfig)

	return nil
}
