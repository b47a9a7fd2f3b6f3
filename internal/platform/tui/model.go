package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/course-arcade/internal/audio"
	"github.com/vovakirdan/course-arcade/internal/config"
	"github.com/vovakirdan/course-arcade/internal/core"
	"github.com/vovakirdan/course-arcade/internal/registry"
	"github.com/vovakirdan/course-arcade/internal/storage"
)

// maxFrameDelta caps the seconds simulated in one tick, so a stalled
// terminal resumes with one short step instead of a long jump.
const maxFrameDelta = 0.1

// noticeDuration is how long a status notice stays on screen.
const noticeDuration = 2 * time.Second

// Services are the collaborators a game session uses. Any of them may be
// nil: the game then runs without scores, sound or hot reload.
type Services struct {
	Store   *storage.Store
	Audio   audio.Player
	Watcher *config.Watcher
	Logger  *log.Logger
}

// configChangedMsg reports that a watched config file was written.
type configChangedMsg struct{ path string }

// watchErrMsg reports a failure inside the config watcher.
type watchErrMsg struct{ err error }

// GameModel is the Bubble Tea model for running one arcade game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	config     core.RuntimeConfig
	randomSeed bool // Reseed on restart; false when the seed was given
	keys       KeyMap
	help       help.Model
	holds      *HoldTracker
	input      core.InputFrame
	state      core.GameState
	lastTick   time.Time

	notice      string
	noticeUntil time.Time

	quitting   bool
	backToMenu bool
	exitOnBack bool // Standalone play: Back ends the program
	scoreSaved bool // Whether the score has been saved for the finished round
}

// NewGameModel creates a model for an already loaded game.
func NewGameModel(game registry.Game, svc Services, cfg core.RuntimeConfig) GameModel {
	randomSeed := cfg.Seed == 0
	if randomSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if svc.Audio == nil {
		svc.Audio = &audio.Nop{}
	}
	if svc.Logger == nil {
		svc.Logger = log.Default()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		svc:        svc,
		config:     cfg,
		randomSeed: randomSeed,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		holds:      NewHoldTracker(),
		input:      core.NewInputFrame(),
	}
}

// playRows leaves the last terminal row for the help bar.
func playRows(h int) int {
	return max(h-1, 1)
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.svc.Watcher))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Scenes are laid out in world units, so a resize only rescales
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configChangedMsg:
		m.reload(msg.path)
		return m, waitForConfig(m.svc.Watcher)

	case watchErrMsg:
		m.svc.Logger.Warn("config watcher", "error", msg.err)
		return m, waitForConfig(m.svc.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionNone:

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}

	case core.ActionMute:
		muted := !m.svc.Audio.Muted()
		m.svc.Audio.SetMuted(muted)
		if muted {
			m.flash("sound off")
		} else {
			m.flash("sound on")
		}

	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		m.holds.Press(a, time.Now())
		m.input.Set(a)

	default:
		m.input.Set(a)
	}

	return m, nil
}

// handleTick runs one simulation step with the real time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxFrameDelta)
	}
	m.lastTick = now

	// R resets the round at any time
	if m.input.Has(core.ActionRestart) {
		m.restart()
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.holds.Apply(&m.input, now)
	result := m.game.Step(m.input, dt)
	m.state = result.State

	for _, e := range result.Events {
		m.svc.Audio.Play(e.Kind)
		if e.Kind == core.EventRunOver {
			m.saveScore(e.Value, storage.OutcomeRunOver)
		}
	}

	// Save score on game over (once per round)
	switch {
	case m.state.GameOver && !m.scoreSaved:
		outcome := storage.OutcomeLost
		if m.state.Status == core.StatusWon {
			outcome = storage.OutcomeWon
		}
		m.saveScore(m.state.Score, outcome)
		m.scoreSaved = true
	case !m.state.GameOver:
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// restart rebuilds the round from the loaded configuration.
func (m *GameModel) restart() {
	if m.randomSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.scoreSaved = false
	m.holds.Clear()
}

// reload re-reads the game's configuration after a watched file changed.
// A bad file keeps the previous settings running.
func (m *GameModel) reload(path string) {
	r, ok := m.game.(registry.Reloader)
	if !ok {
		return
	}

	if err := r.Reload(); err != nil {
		m.svc.Logger.Warn("config reload failed", "game", m.game.ID(), "path", path, "error", err)
		m.flash("config error, keeping previous settings")
		return
	}

	m.svc.Logger.Info("config reloaded", "game", m.game.ID(), "path", path)
	m.restart()
	m.flash("config reloaded")
}

func (m *GameModel) saveScore(score int, outcome string) {
	if m.svc.Store == nil || score <= 0 {
		return
	}
	if _, err := m.svc.Store.SaveScore(m.game.ID(), score, outcome); err != nil {
		m.svc.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

func (m *GameModel) flash(text string) {
	m.notice = text
	m.noticeUntil = time.Now().Add(noticeDuration)
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	core.Rasterize(m.screen, m.game.Scene())

	home, err := os.UserHomeDir()
	if err != nil {
		m.svc.Logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.svc.Logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.svc.Logger.Warn("screenshot: cannot write file", "error", err)
		return
	}
	m.svc.Logger.Info("screenshot saved", "path", path)
	m.flash("screenshot saved")
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	status := ""
	if time.Now().Before(m.noticeUntil) {
		status = m.notice
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScene(m.screen, m.game.Scene(), status) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// waitForConfig blocks on the watcher until a change or error arrives.
// A nil watcher or a closed channel yields no message.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, svc, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
