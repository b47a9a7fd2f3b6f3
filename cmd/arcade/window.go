package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/course-arcade/internal/platform/window"
	"github.com/vovakirdan/course-arcade/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a native window",
	Long: `Start the specified game in a native window instead of the terminal.
The keys are the same as in the terminal; Esc or Q closes the window.

Examples:
  arcade window sprites
  arcade window pong --scale 0.75
  arcade window textures --assets ./art`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window size relative to the game world (0 = fit to 1280x720)")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	game, err := registry.Prepare(gameID, gameOptions())
	if err != nil {
		fail("cannot start %s: %v", gameID, err)
	}

	svc := window.Services{
		Store:   openStore(),
		Audio:   openAudio(),
		Watcher: openWatcher(gameID),
		Logger:  log.Default(),
	}
	defer func() {
		if svc.Watcher != nil {
			svc.Watcher.Close()
		}
		svc.Audio.Close()
		if svc.Store != nil {
			svc.Store.Close()
		}
	}()

	log.Info("window started", "game", gameID, "scale", flagScale)
	opts := window.Options{Scale: flagScale, TickRate: flagFPS, Seed: flagSeed}
	if err := window.Run(game, svc, opts); err != nil {
		log.Error("window closed with error", "game", gameID, "error", err)
		fail("running game: %v", err)
	}
}
