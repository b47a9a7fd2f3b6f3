package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/course-arcade/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("16")),
}

// RenderScene rasterizes sc into the screen buffer, writes status (if any)
// on the bottom row and returns the colored result.
func RenderScene(s *core.Screen, sc core.Scene, status string) string {
	core.Rasterize(s, sc)
	if status != "" {
		s.DrawTextColored(1, s.Height()-1, status, core.ColorBrightYellow)
	}
	return styledRows(s)
}

// styledRows renders each row as runs of same-colored cells, one lipgloss
// style per run.
func styledRows(s *core.Screen) string {
	rows := make([]string, s.Height())
	var run []rune
	for y := range rows {
		var line strings.Builder
		runColor := s.GetCell(0, y).Color
		run = run[:0]

		flush := func() {
			if len(run) == 0 {
				return
			}
			style, ok := colorStyles[runColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			line.WriteString(style.Render(string(run)))
			run = run[:0]
		}

		for x := range s.Width() {
			c := s.GetCell(x, y)
			if c.Color != runColor {
				flush()
				runColor = c.Color
			}
			run = append(run, c.Rune)
		}
		flush()
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}
