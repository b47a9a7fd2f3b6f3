package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/course-arcade/internal/registry"
	"github.com/vovakirdan/course-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every game in the arcade, the course lesson it comes from and
your best recorded score.`,
	Run: runList,
}

var listHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	fmt.Println(gameTable(games, store))
	fmt.Println()
	fmt.Println("Run 'arcade play <id>' or 'arcade window <id>' to play a game.")
}

// gameTable lays the games out one per row. Best stays "-" without a
// store or a recorded run.
func gameTable(games []registry.GameInfo, store *storage.Store) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Title", "Lesson", "Best").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, g := range games {
		best := "-"
		if store != nil {
			if score, err := store.HighScore(g.ID); err == nil && score > 0 {
				best = strconv.Itoa(score)
			} else if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: no best score for %s: %v\n", g.ID, err)
			}
		}
		lesson := g.Lesson
		if lesson == "" {
			lesson = "-"
		}
		t.Row(g.ID, g.Title, lesson, best)
	}
	return t.String()
}
