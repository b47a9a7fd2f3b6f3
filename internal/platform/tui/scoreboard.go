package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/course-arcade/internal/registry"
	"github.com/vovakirdan/course-arcade/internal/storage"
)

const (
	minWidthForSidebar = 80  // Below this the game list becomes a tab line
	sidebarWidth       = 20
	maxScores          = 100 // Rows loaded per game
	dateLayout         = "Jan 02 15:04"
)

// Shared scoreboard styles.
var (
	boardTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTab    = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/l", "next game")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/h", "prev game")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows recorded runs per game, one game at a time.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store // May be nil: the board then stays empty
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard opened on the first game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.selectGame(0)
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// newTable sizes the score table to the current terminal.
func (m *ScoreboardModel) newTable() table.Model {
	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}

	scoreW, dateW := 10, 18
	if avail > 50 {
		scoreW, dateW = 12, min(avail-33, 20)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: scoreW},
			{Title: "Result", Width: 9},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// selectGame moves the game cursor by delta, wrapping, and reloads scores.
func (m *ScoreboardModel) selectGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	n := len(m.games)
	m.gameCursor = ((m.gameCursor+delta)%n + n) % n

	m.scores, m.stats = nil, nil
	if m.store != nil {
		id := m.games[m.gameCursor].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			outcomeLabel(s.Outcome),
			s.CreatedAt.Format(dateLayout),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectGame(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.gameCursor].Title
	}

	var b strings.Builder
	b.WriteString(boardTitle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	body := boardPanel.Render(m.tableView())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.tabLine(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(body, m.width))
	}

	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(boardDim.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebar lists every game with the selected one highlighted.
func (m ScoreboardModel) sidebar() string {
	var s strings.Builder
	s.WriteString("Games\n")
	s.WriteString(strings.Repeat("-", sidebarWidth-4))
	s.WriteString("\n")

	for i, g := range m.games {
		line := "  " + truncate(g.Title, sidebarWidth-6)
		if i == m.gameCursor {
			line = boardActive.Render("> " + truncate(g.Title, sidebarWidth-6))
		}
		s.WriteString(line)
		s.WriteString("\n")
	}
	return boardPanel.Width(sidebarWidth).Render(s.String())
}

// tabLine is the narrow-terminal game picker.
func (m ScoreboardModel) tabLine() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		name := truncate(g.Title, 10)
		if i == m.gameCursor {
			tabs[i] = boardTab.Render(name)
		} else {
			tabs[i] = boardDim.Render(" " + name + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.games) > 0 {
		return fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return boardEmpty.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// statsLine summarizes every recorded run of the selected game.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	st := m.stats
	return fmt.Sprintf("Runs: %d  |  Wins: %d  |  Best: %d  |  Avg: %.1f  |  Last: %s",
		st.GamesCount, st.Wins, st.HighScore, st.AvgScore, st.LastPlayed.Format(dateLayout))
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// outcomeLabel renders a stored outcome for the table.
func outcomeLabel(outcome string) string {
	switch outcome {
	case storage.OutcomeWon:
		return "won"
	case storage.OutcomeLost:
		return "lost"
	case storage.OutcomeRunOver:
		return "run over"
	default:
		return "-"
	}
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
