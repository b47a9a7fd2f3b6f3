package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/course-arcade/internal/platform/tui"
	"github.com/vovakirdan/course-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc or B inside a game returns here; Tab shows the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard --mute`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	player := openAudio()
	defer func() {
		player.Close()
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		gameID := menuResult.GameID
		game, err := registry.Prepare(gameID, gameOptions())
		if err != nil {
			log.Error("cannot start game", "game", gameID, "error", err)
			fmt.Fprintf(os.Stderr, "Error: cannot start %s: %v\n", gameID, err)
			continue
		}

		watcher := openWatcher(gameID)
		svc := tui.Services{Store: store, Audio: player, Watcher: watcher, Logger: log.Default()}
		log.Info("game started", "game", gameID)

		if err := tui.Run(game, svc, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if watcher != nil {
			watcher.Close()
		}
	}
}
