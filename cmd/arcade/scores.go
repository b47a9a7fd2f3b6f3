package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/course-arcade/internal/registry"
	"github.com/vovakirdan/course-arcade/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

Examples:
  arcade scores sprites
  arcade scores pong
  arcade scores pong --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			log.Error("clear scores failed", "game", gameID, "error", err)
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		log.Info("scores cleared", "game", gameID, "count", n)
		fmt.Printf("Cleared %d score(s) for %s.\n", n, title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, resultLabel(entry.Outcome), dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Wins: %d   Avg: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
}

func resultLabel(outcome string) string {
	switch outcome {
	case storage.OutcomeRunOver:
		return "run over"
	case "":
		return "-"
	}
	return outcome
}
