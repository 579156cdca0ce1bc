package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/registry"
	"github.com/vovakirdan/sandpit/internal/storage"
)

// keyHold is how long a key counts as held after its last press or repeat.
// Terminals report no key-up events.
const keyHold = 150 * time.Millisecond

// statusLines is the number of terminal rows below the game surface.
const statusLines = 2

// SurfaceSize converts a terminal size in cells to the pixel surface a game
// draws on. Each cell shows two pixels stacked vertically.
func SurfaceSize(cols, rows int) (int, int) {
	return max(cols, 1), max(rows-statusLines, 1) * 2
}

// TerminalConfig converts a runtime config holding a terminal size in cells
// into one describing the pixel surface.
func TerminalConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenW, cfg.ScreenH = SurfaceSize(cfg.ScreenW, cfg.ScreenH)
	cfg.Surface = core.SurfaceTerminal
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// GameModel runs one game in the terminal. The game must already be Reset
// for the model's surface, see registry.Prepare and TerminalConfig.
type GameModel struct {
	game     registry.Game
	buffer   *core.PixelBuffer
	renderer *PixelRenderer
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	input    *core.InputState
	clock    *core.FrameClock
	keys     GameKeyMap
	help     help.Model
	state    core.GameState

	standalone bool // back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for game drawing on the surface in cfg.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if logger == nil {
		logger = log.Default()
	}
	return GameModel{
		game:     game,
		buffer:   core.NewPixelBuffer(cfg.ScreenW, cfg.ScreenH),
		renderer: NewPixelRenderer(),
		store:    store,
		logger:   logger,
		config:   cfg,
		input:    core.NewInputState(),
		clock:    core.NewFrameClock(),
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		state:    game.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.clock.Reset()
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.recordScore()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.recordScore()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.input.Tap(a, time.Now(), keyHold)
	}
	return m, nil
}

// handleMouse forwards pointer events in surface pixel coordinates. The wheel
// resizes the brush.
func (m GameModel) handleMouse(msg tea.MouseMsg) {
	x, y := PointerPixel(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.input.PointerDown(core.ButtonPrimary, x, y)
		case tea.MouseButtonRight:
			m.input.PointerDown(core.ButtonSecondary, x, y)
		case tea.MouseButtonWheelUp:
			m.input.Tap(core.ActionBrushGrow, time.Now(), 0)
		case tea.MouseButtonWheelDown:
			m.input.Tap(core.ActionBrushShrink, time.Now(), 0)
		}
	case tea.MouseActionRelease:
		m.input.PointerMove(x, y)
		m.input.PointerUp()
	case tea.MouseActionMotion:
		m.input.PointerMove(x, y)
	}
}

// resize adapts the surface to a new terminal size. The game keeps its state.
func (m *GameModel) resize(cols, rows int) {
	w, h := SurfaceSize(cols, rows)
	m.config.ScreenW, m.config.ScreenH = w, h
	m.buffer.Resize(w, h)
	m.help.Width = cols
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, h)
	}
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)
	result := m.game.Step(m.input.Frame(now), dt)
	m.state = result.State

	switch m.state.Status {
	case core.StatusEnded:
		m.recordScore()
	case core.StatusRunning:
		m.scoreSaved = false
	}
	return m, tickCmd(m.config.TickRate)
}

// recordScore saves the current score once per run.
func (m *GameModel) recordScore() {
	if m.scoreSaved || m.store == nil || m.state.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.state.Score); err != nil {
		m.logger.Warn("cannot save score", "game", m.game.ID(), "err", err)
	}
	m.scoreSaved = true
}

// saveScreenshot writes the current frame, with its color escapes, to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.buffer)

	dir := filepath.Join(os.Getenv("HOME"), ".sandpit", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}
	name := fmt.Sprintf("%s_%s.ans", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.renderer.Render(m.buffer)), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
	}
}

// statusLine summarizes the run state on one line.
func (m GameModel) statusLine() string {
	parts := []string{titleStyle.Render(m.game.Title()), m.state.Status.String()}
	if m.state.Paused {
		parts = append(parts, "paused")
	}
	parts = append(parts, fmt.Sprintf("score %d", m.state.Score))
	if m.state.Hint != "" {
		parts = append(parts, m.state.Hint)
	}
	return statusStyle.MaxWidth(m.config.ScreenW).Render(strings.Join(parts, "  "))
}

// View renders the game surface, the status line and the key help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.buffer)

	var b strings.Builder
	b.WriteString(m.renderer.Render(m.buffer))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.MaxWidth(m.config.ScreenW).Render(m.help.View(m.keys)))
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the player quits. cfg must come from
// TerminalConfig.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
