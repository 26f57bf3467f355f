package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/highscore"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// fatal prints an error the way every command does and exits.
// Call it only once nothing deferred is left to run.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.SkyhopConfig, string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	if flagFPS > 0 {
		cfg.Screen.FPS = flagFPS
	}
	if flagHighScore != "" {
		cfg.HighScoreFile = flagHighScore
	}
	return cfg, source
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyhop",
		Level:           level,
	})
}

// openLogFile opens the log file for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// newScoreStore picks the high score backend from --store.
func newScoreStore(cfg config.SkyhopConfig) (highscore.Store, error) {
	switch strings.ToLower(flagStore) {
	case "", "file":
		path, err := config.ExpandHome(cfg.HighScoreFile)
		if err != nil {
			return nil, err
		}
		return highscore.NewFileStore(path), nil
	case "gdata":
		store, err := highscore.NewGdataStore("skyhop")
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown high score store %q (want file or gdata)", flagStore)
	}
}

// newTracker builds the shared high score tracker.
func newTracker(cfg config.SkyhopConfig, logger *log.Logger) (*highscore.Tracker, error) {
	store, err := newScoreStore(cfg)
	if err != nil {
		return nil, err
	}
	if fs, ok := store.(*highscore.FileStore); ok {
		logger.Debug("high score file", "path", fs.Path())
	}
	return highscore.NewTracker(store, logger), nil
}

// openRuns opens the run history, or returns nil when it is disabled or unavailable.
func openRuns(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "err", err)
		return nil
	}
	return store
}
