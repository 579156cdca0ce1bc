// Package tileworld implements a side-on block world: terrain generated from
// a seed text, a player that walks, jumps and swims, and mining and placing
// of blocks that persist per seed.
package tileworld

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sandpit/internal/config"
	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/games/tileworld/terrain"
	"github.com/vovakirdan/sandpit/internal/registry"
	"github.com/vovakirdan/sandpit/internal/storage"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// Hotbar lists the placeable blocks in slot order.
var Hotbar = []terrain.Kind{terrain.Grass, terrain.Dirt, terrain.Stone}

const (
	hintIdle    = "Press Enter to start"
	hintRunning = "WASD / Arrows to move, Space to jump, LMB mine, RMB place, 1-3 select block"
	hintEnded   = "Stopped. Press Enter to regenerate"
)

func init() {
	registry.Register("tileworld", func() registry.Game {
		return New()
	})
}

// Game adapts a tile world session to the host.
type Game struct {
	cfg    config.TileWorldConfig
	gen    *terrain.Generator
	kv     storage.KV
	store  *EditStore
	logger *log.Logger

	state    *State
	seedText string
	selected terrain.Kind
	status   core.Status
	edits    int

	surface core.Surface
	screenW int
	screenH int
	zoom    float64

	pointer   terrain.Point
	pointerOK bool
}

// New creates a new tile world instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tileworld"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tile World"
}

// UseStore sets where edits are persisted. Without a store edits live only
// in memory for the process lifetime.
func (g *Game) UseStore(kv storage.KV, logger *log.Logger) {
	g.kv = kv
	g.logger = logger
}

// Reset loads configuration and shows the world for the configured seed
// text, waiting for Start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tc, err := config.LoadTileWorld(configPath)
	if err != nil {
		tc = config.DefaultTileWorldConfig()
	}
	g.cfg = tc

	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.kv == nil {
		g.kv = storage.NewMemoryKV()
	}
	g.store = NewEditStore(g.kv, tc.Storage.Namespace)

	if g.gen != nil {
		g.gen.Close()
		g.gen = nil
	}
	if gen, err := terrain.NewGenerator(tc); err != nil {
		g.logger.Warn("terrain cache disabled", "err", err)
	} else {
		g.gen = gen
	}

	g.seedText = cfg.SeedText
	g.selected = terrain.Dirt
	g.surface = cfg.Surface
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.load()
	g.status = core.StatusIdle
}

// SetSeedText changes the seed text used by the next Start.
func (g *Game) SetSeedText(text string) {
	g.seedText = text
}

// SeedFor hashes the trimmed seed text, using fallback when it is empty.
func SeedFor(text, fallback string) uint32 {
	text = strings.TrimSpace(text)
	if text == "" {
		text = fallback
	}
	return terrain.HashSeed(text)
}

func (g *Game) seedFor(text string) uint32 {
	return SeedFor(text, g.cfg.Storage.SeedText)
}

func (g *Game) base(seed uint32) *terrain.Base {
	if g.gen != nil {
		return g.gen.Base(seed)
	}
	return terrain.Generate(seed, g.cfg.World, g.cfg.Trees)
}

// load regenerates the world for the current seed text with its stored
// edits and respawns the player. A stored overlay that cannot be read is
// logged and ignored.
func (g *Game) load() {
	base := g.base(g.seedFor(g.seedText))
	edits, err := g.store.Load(base)
	if err != nil {
		g.logger.Warn("cannot load world edits", "key", g.store.Key(base.Seed), "err", err)
		edits = NewOverlay()
	}
	g.state = NewState(NewWorld(base, edits), g.cfg)
	g.edits = 0
	vw, vh := g.viewSize()
	g.state.CenterCamera(vw, vh)
}

func (g *Game) save() {
	seed := g.state.World.Base.Seed
	if err := g.store.Save(seed, g.state.World.Edits); err != nil {
		g.logger.Warn("cannot save world edits", "key", g.store.Key(seed), "err", err)
	}
}

// Resize recomputes the zoom for a new surface size. The world is untouched.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	scale := g.cfg.Render.Scale.Window
	if g.surface == core.SurfaceTerminal {
		scale = g.cfg.Render.Scale.Terminal
	}
	g.zoom = float64(max(scale, 1)) / g.cfg.World.TileSize
	if g.state != nil {
		vw, vh := g.viewSize()
		g.state.clampCamera(vw, vh)
	}
}

// viewSize returns the visible area in world pixels.
func (g *Game) viewSize() (float64, float64) {
	return float64(g.screenW) / g.zoom, float64(g.screenH) / g.zoom
}

// PreferredSize returns a surface size showing a comfortable slice of the
// world: 48x27 tiles in a window, 80x48 in a terminal.
func (g *Game) PreferredSize(s core.Surface) (int, int) {
	cfg, err := config.LoadTileWorld(configPath)
	if err != nil {
		cfg = config.DefaultTileWorldConfig()
	}
	if s == core.SurfaceTerminal {
		scale := max(cfg.Render.Scale.Terminal, 1)
		return 80 * scale, 48 * scale
	}
	scale := max(cfg.Render.Scale.Window, 1)
	return 48 * scale, 27 * scale
}

// Start regenerates the world from the seed text, reloads its stored edits
// and respawns the player.
func (g *Game) Start() {
	g.load()
	g.status = core.StatusRunning
}

// Stop freezes the world. Edits are already saved.
func (g *Game) Stop() {
	g.status = core.StatusEnded
}

// ResetEdits drops every edit of the current seed, in memory and in storage.
func (g *Game) ResetEdits() {
	if g.state == nil {
		return
	}
	g.state.World.Edits.Clear()
	seed := g.state.World.Base.Seed
	if err := g.store.Remove(seed); err != nil {
		g.logger.Warn("cannot remove world edits", "key", g.store.Key(seed), "err", err)
	}
}

// Step handles selection, lifecycle and pointer actions, then advances the
// player and camera.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.state == nil {
		g.Reset(core.DefaultConfig())
	}

	in.Pressed.Each(func(a core.Action) {
		if n := a.Slot(); n >= 1 && n <= len(Hotbar) {
			g.selected = Hotbar[n-1]
		}
	})
	if in.JustPressed(core.ActionStart) {
		g.Start()
	}
	if in.JustPressed(core.ActionStop) {
		g.Stop()
	}
	if in.JustPressed(core.ActionResetEdits) {
		g.ResetEdits()
	}

	s := g.state
	g.pointerOK = in.Pointer.Known
	if g.pointerOK {
		g.pointer.X, g.pointer.Y = s.TileAt(in.Pointer.X/g.zoom+s.Camera.X, in.Pointer.Y/g.zoom+s.Camera.Y)
	}

	if g.status != core.StatusRunning {
		return core.StepResult{State: g.State()}
	}

	if g.pointerOK {
		changed := false
		switch in.Pointer.Pressed {
		case core.ButtonPrimary:
			changed = s.Mine(g.pointer.X, g.pointer.Y)
		case core.ButtonSecondary:
			changed = s.Place(g.pointer.X, g.pointer.Y, g.selected)
		}
		if changed {
			g.edits++
			g.save()
		}
	}

	Tick(s, Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
	}, dt)
	vw, vh := g.viewSize()
	s.Follow(vw, vh, dt)

	return core.StepResult{State: g.State()}
}

// Render draws the world, the player and the hotbar.
func (g *Game) Render(dst *core.PixelBuffer) {
	if g.state == nil {
		return
	}
	renderWorld(g.state, dst, g.zoom, g.pointer, g.pointerOK && g.status == core.StatusRunning)
	renderHotbar(dst, g.selected)
}

// State returns the current game state. The score counts blocks mined or
// placed since Start.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:  g.edits,
		Status: g.status,
	}
	switch g.status {
	case core.StatusIdle:
		st.Hint = hintIdle
	case core.StatusRunning:
		st.Hint = hintRunning
	default:
		st.Hint = hintEnded
	}
	return st
}

// Selected returns the block placed by the secondary button.
func (g *Game) Selected() terrain.Kind {
	return g.selected
}

// Sim exposes the underlying world state.
func (g *Game) Sim() *State {
	return g.state
}
