// arcade is a course arcade: small real-time games played in the terminal,
// over SSH, or in a native window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade menu              - Start menu to pick games interactively
//	arcade scores <game>     - Show high scores for a game
//	arcade serve             - Start SSH server for remote play
//	arcade window <game>     - Play a game in a native window
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--assets <dir>        - Look for textures here before the built-in set
//	--mute                - Start with sound effects off
//	--watch               - Reload the game config when its file changes
//	--log-file <path>     - Where logs go (default: ~/.arcade/arcade.log)
//	--verbose             - Log debug messages
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/course-arcade/internal/games/pong"
	_ "github.com/vovakirdan/course-arcade/internal/games/sprites"
	_ "github.com/vovakirdan/course-arcade/internal/games/textures"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagMute       bool
	flagWatch      bool
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Course Arcade - small real-time games for your terminal",
	Long: `Course Arcade hosts a handful of small real-time games: a sprite
collection level, a textured player demo and a paddle-and-ball game.
They run in the terminal, over SSH, or in a native window.

Available commands:
  list     - Show all available games
  play     - Play a specific game in the terminal
  menu     - Interactive game picker menu
  scores   - View or clear high scores
  serve    - Start SSH server for remote play
  window   - Play a game in a native window

Examples:
  arcade list
  arcade play sprites
  arcade play pong --difficulty hard
  arcade menu --mute
  arcade window textures --assets ./art
  arcade serve --ssh :2222`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagAssets, "assets", "", "Directory searched for textures before the built-in set")
	pf.BoolVar(&flagMute, "mute", false, "Start with sound effects off")
	pf.BoolVar(&flagWatch, "watch", false, "Reload the game config when its file changes")
	pf.StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Log file path")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
}
