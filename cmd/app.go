package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/saifk/ramadan-companion/internal/config"
	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/prayer/astro"
	"github.com/saifk/ramadan-companion/internal/state"
	"github.com/saifk/ramadan-companion/internal/storage"
)

// app wires config, storage and the state store for one command invocation.
type app struct {
	cfg   config.Config
	log   zerolog.Logger
	files *storage.Store
	store *state.Store
}

// openApp loads and sanitizes persisted state, runs housekeeping once, and
// returns a ready store. Load problems degrade to a default state; they
// never stop a command from running.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	files := storage.New(cfg.DataDir)
	raw, err := files.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("stored state unusable, starting from defaults")
	}

	initial := state.Housekeep(model.Sanitize(raw), time.Now())
	store := state.NewStore(initial, state.Reducer{Calc: astro.Calculate}, files.Save, logger)

	return &app{cfg: cfg, log: logger, files: files, store: store}, nil
}

// close waits for pending persistence before the process exits.
func (a *app) close() {
	a.store.Flush()
}
