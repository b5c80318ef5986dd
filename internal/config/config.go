// Package config loads process-level settings from the environment.
// Domain settings (location, calculation method, reminders) live inside the
// persisted state, not here.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/saifk/ramadan-companion/internal/storage"
)

// Config holds environment overrides for the rdc process.
type Config struct {
	// DataDir overrides the state directory (default ~/.rdc).
	DataDir string `envconfig:"DATA_DIR"`
	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// ReminderTick is the reminder-evaluation period for the daemon.
	ReminderTick time.Duration `envconfig:"REMINDER_TICK" default:"15s"`
	// HousekeepingTick is the checklist-reset period for the daemon.
	HousekeepingTick time.Duration `envconfig:"HOUSEKEEPING_TICK" default:"60s"`
}

// Load reads RDC_* environment variables and backfills defaults. Only a
// missing home directory can make it fail.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("rdc", &cfg); err != nil {
		// Bad env values fall back to defaults rather than killing a tool
		// that otherwise works fully offline.
		cfg = Config{LogLevel: "info", ReminderTick: 15 * time.Second, HousekeepingTick: time.Minute}
	}
	if cfg.ReminderTick <= 0 {
		cfg.ReminderTick = 15 * time.Second
	}
	if cfg.HousekeepingTick <= 0 {
		cfg.HousekeepingTick = time.Minute
	}
	if cfg.DataDir == "" {
		dir, err := storage.DefaultDir()
		if err != nil {
			return cfg, err
		}
		cfg.DataDir = dir
	}
	return cfg, nil
}
