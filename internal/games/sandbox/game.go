// Package sandbox implements a falling-sand cellular automaton.
// Sand, water, oil, gunpowder, walls, bombs and fire interact on a fixed
// grid while a small player walks, swims and gets blown around on top.
package sandbox

import (
	"fmt"

	"github.com/vovakirdan/sandpit/internal/config"
	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// startTool and startBrush override the configured brush when set via CLI
var (
	startTool  string
	startBrush int
)

// SetStartTool selects the tool active after Reset, by material name.
func SetStartTool(name string) {
	startTool = name
}

// SetStartBrush sets the brush radius active after Reset.
func SetStartBrush(r int) {
	startBrush = r
}

func init() {
	registry.Register("sandbox", func() registry.Game {
		return New()
	})
}

// Game adapts the sandbox simulation to the host: tool selection, run
// state, and the mapping from surface pixels to cells.
type Game struct {
	cfg    config.SandboxConfig
	state  *State
	canvas *core.PixelBuffer
	view   core.Viewport

	tool   Kind
	brush  int
	status core.Status
	paused bool

	cursorX, cursorY int
	cursorOK         bool
}

// New creates a new sandbox instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "sandbox"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Falling Sand"
}

// Reset loads configuration, clears the board and starts running.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	sc, err := config.LoadSandbox(configPath)
	if err != nil {
		sc = config.DefaultSandboxConfig()
	}
	g.cfg = sc

	g.state = NewState(sc, cfg.Seed)
	g.canvas = core.NewPixelBuffer(sc.Grid.Width, sc.Grid.Height)

	g.tool = Sand
	toolName := sc.Brush.Tool
	if startTool != "" {
		toolName = startTool
	}
	if k, err := ParseKind(toolName); err == nil && k != Empty {
		g.tool = k
	}
	g.brush = sc.Brush.Radius
	if startBrush > 0 {
		g.brush = startBrush
	}
	g.brush = core.Clamp(g.brush, sc.Brush.MinRadius, sc.Brush.MaxRadius)

	g.status = core.StatusRunning
	g.paused = false
	g.cursorOK = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the cell-to-pixel mapping. The board is untouched.
func (g *Game) Resize(w, h int) {
	g.view = core.FitViewport(g.cfg.Grid.Width, g.cfg.Grid.Height, w, h)
}

// PreferredSize returns the surface size that shows every cell at the
// configured scale.
func (g *Game) PreferredSize(s core.Surface) (int, int) {
	cfg, err := config.LoadSandbox(configPath)
	if err != nil {
		cfg = config.DefaultSandboxConfig()
	}
	scale := cfg.Render.Window
	if s == core.SurfaceTerminal {
		scale = cfg.Render.Terminal
	}
	scale = max(scale, 1)
	return cfg.Grid.Width * scale, cfg.Grid.Height * scale
}

// Start resumes a stopped simulation.
func (g *Game) Start() {
	g.status = core.StatusRunning
	g.paused = false
}

// Stop halts the simulation. The board stays visible.
func (g *Game) Stop() {
	g.status = core.StatusEnded
}

// Step handles tool and lifecycle actions, then advances the simulation.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.state == nil {
		g.Reset(core.DefaultConfig())
	}

	in.Pressed.Each(func(a core.Action) {
		if k, ok := ToolForSlot(a.Slot()); ok {
			g.tool = k
		}
	})
	if in.JustPressed(core.ActionBrushGrow) {
		g.brush = min(g.brush+1, g.cfg.Brush.MaxRadius)
	}
	if in.JustPressed(core.ActionBrushShrink) {
		g.brush = max(g.brush-1, g.cfg.Brush.MinRadius)
	}
	if in.JustPressed(core.ActionClear) {
		g.state.Reset()
	}
	if in.JustPressed(core.ActionStart) {
		g.Start()
	}
	if in.JustPressed(core.ActionStop) {
		g.Stop()
	}
	if in.JustPressed(core.ActionPause) && g.status == core.StatusRunning {
		g.paused = !g.paused
	}

	g.cursorOK = false
	if in.Pointer.Known {
		g.cursorX, g.cursorY, g.cursorOK = g.view.ToSource(in.Pointer.X, in.Pointer.Y)
	}

	if g.status != core.StatusRunning || g.paused {
		return core.StepResult{State: g.State()}
	}

	Tick(g.state, Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Up:      in.Has(core.ActionUp),
		Paint:   g.cursorOK && in.Pointer.Down != core.ButtonNone,
		Erase:   in.Pointer.Down == core.ButtonSecondary,
		CursorX: g.cursorX,
		CursorY: g.cursorY,
		Tool:    g.tool,
		Brush:   g.brush,
	}, dt)

	return core.StepResult{State: g.State()}
}

// Render draws the board scaled to the surface with the player on top.
func (g *Game) Render(dst *core.PixelBuffer) {
	if g.state == nil {
		return
	}
	RenderGrid(g.state.Grid, g.state.Frame, g.canvas)
	dst.Clear(core.RGB(0, 0, 0))
	dst.BlitScaled(g.canvas, g.view)
	renderPlayer(g.state, dst, g.view)
	if g.cursorOK {
		renderBrush(dst, g.view, g.cursorX, g.cursorY, g.brush)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Status: g.status,
		Paused: g.paused,
	}
	if g.state == nil {
		return st
	}
	st.Score = g.state.Detonations
	st.Hint = fmt.Sprintf("%s  brush %d  1-7 tools  [ ] size  C clear", g.tool, g.brush)
	return st
}

// Tool returns the active material.
func (g *Game) Tool() Kind {
	return g.tool
}

// Brush returns the active brush radius.
func (g *Game) Brush() int {
	return g.brush
}

// Sim exposes the underlying simulation state.
func (g *Game) Sim() *State {
	return g.state
}
