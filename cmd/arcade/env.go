package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/course-arcade/internal/audio"
	"github.com/vovakirdan/course-arcade/internal/config"
	"github.com/vovakirdan/course-arcade/internal/core"
	"github.com/vovakirdan/course-arcade/internal/registry"
	"github.com/vovakirdan/course-arcade/internal/storage"
)

// logFile is the open --log-file, closed after the command finishes.
var logFile *os.File

// setupLogging points the default logger at the log file. The terminal
// belongs to the game, so nothing is logged to stderr while one runs.
func setupLogging(_ *cobra.Command, _ []string) error {
	path, err := expandHome(flagLogFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	log.SetDefault(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
	}))
	log.Debug("arcade starting", "args", os.Args[1:])
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// fail reports a fatal error to the user and the log, then exits.
func fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Error(msg)
	fmt.Fprintln(os.Stderr, "Error: "+msg)
	os.Exit(1)
}

// requireGame exits unless id names a registered game.
func requireGame(id string) {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
}

// gameOptions collects the flags every game is configured with.
func gameOptions() registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		AssetDir:   flagAssets,
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Playing continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openAudio opens the speaker, falling back to silence.
func openAudio() audio.Player {
	player, err := audio.Open(flagMute)
	if err != nil {
		log.Warn("sound disabled", "error", err)
	}
	return player
}

// openWatcher starts watching the game's config files when --watch is set.
// A nil watcher means hot reload is off.
func openWatcher(gameID string) *config.Watcher {
	if !flagWatch {
		return nil
	}

	w, err := config.NewWatcher(config.WatchPaths(gameID, flagConfig)...)
	switch {
	case errors.Is(err, config.ErrNothingToWatch):
		log.Info("no config file to watch", "game", gameID)
		return nil
	case err != nil:
		log.Warn("config watch disabled", "game", gameID, "error", err)
		return nil
	}
	log.Debug("watching config", "game", gameID)
	return w
}
