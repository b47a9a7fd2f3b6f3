package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/course-arcade/internal/platform/tui"
	"github.com/vovakirdan/course-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  WASD/Arrows  - Move
  Space/Enter  - Start a new round after a win or loss
  R            - Reset the round
  P            - Pause
  F1/H         - Toggle hitbox overlay
  M            - Toggle sound
  Ctrl+S       - Save a text screenshot
  Esc/B, Q     - Quit

Difficulty options:
  easy   - Start at the lowest level, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play sprites
  arcade play pong --difficulty easy
  arcade play sprites --config ./my-level.yaml --watch
  arcade play textures --assets ./art`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	game, err := registry.Prepare(gameID, gameOptions())
	if err != nil {
		fail("cannot start %s: %v", gameID, err)
	}

	svc := tui.Services{
		Store:   openStore(),
		Audio:   openAudio(),
		Watcher: openWatcher(gameID),
		Logger:  log.Default(),
	}
	log.Info("game started", "game", gameID, "difficulty", flagDifficulty)

	runErr := tui.Run(game, svc, runtimeConfig())
	closeServices(svc)

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// closeServices releases everything a game session opened.
func closeServices(svc tui.Services) {
	if svc.Watcher != nil {
		svc.Watcher.Close()
	}
	if svc.Audio != nil {
		svc.Audio.Close()
	}
	if svc.Store != nil {
		svc.Store.Close()
	}
}
