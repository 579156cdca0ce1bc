//go:build ebiten

package gui

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/registry"
	"github.com/vovakirdan/sandpit/internal/storage"
)

var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowLeft:    core.ActionLeft,
	ebiten.KeyA:            core.ActionLeft,
	ebiten.KeyArrowRight:   core.ActionRight,
	ebiten.KeyD:            core.ActionRight,
	ebiten.KeyArrowUp:      core.ActionUp,
	ebiten.KeyW:            core.ActionUp,
	ebiten.KeySpace:        core.ActionUp,
	ebiten.KeyArrowDown:    core.ActionDown,
	ebiten.KeyS:            core.ActionDown,
	ebiten.KeyEnter:        core.ActionStart,
	ebiten.KeyX:            core.ActionStop,
	ebiten.KeyP:            core.ActionPause,
	ebiten.KeyC:            core.ActionClear,
	ebiten.KeyBackspace:    core.ActionResetEdits,
	ebiten.KeyDigit1:       core.ActionSlot1,
	ebiten.KeyDigit2:       core.ActionSlot2,
	ebiten.KeyDigit3:       core.ActionSlot3,
	ebiten.KeyDigit4:       core.ActionSlot4,
	ebiten.KeyDigit5:       core.ActionSlot5,
	ebiten.KeyDigit6:       core.ActionSlot6,
	ebiten.KeyDigit7:       core.ActionSlot7,
	ebiten.KeyBracketRight: core.ActionBrushGrow,
	ebiten.KeyEqual:        core.ActionBrushGrow,
	ebiten.KeyBracketLeft:  core.ActionBrushShrink,
	ebiten.KeyMinus:        core.ActionBrushShrink,
	ebiten.KeyEscape:       core.ActionBack,
	ebiten.KeyQ:            core.ActionQuit,
}

// host adapts a registry.Game to the ebiten.Game interface.
type host struct {
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	buffer *core.PixelBuffer
	input  *core.InputState
	clock  *core.FrameClock
	state  core.GameState

	scoreSaved bool
}

// Update samples input and advances the game by the frame time.
func (h *host) Update() error {
	now := time.Now()

	for k, a := range keyActions {
		switch {
		case inpututil.IsKeyJustPressed(k):
			if a == core.ActionQuit || a == core.ActionBack {
				h.recordScore()
				return ebiten.Termination
			}
			h.input.Press(a)
		case inpututil.IsKeyJustReleased(k):
			h.input.Release(a)
		}
	}

	x, y := ebiten.CursorPosition()
	h.input.PointerMove(float64(x)+0.5, float64(y)+0.5)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		h.input.PointerDown(core.ButtonPrimary, float64(x)+0.5, float64(y)+0.5)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		h.input.PointerDown(core.ButtonSecondary, float64(x)+0.5, float64(y)+0.5)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		h.input.PointerUp()
	}
	if _, wy := ebiten.Wheel(); wy > 0 {
		h.input.Tap(core.ActionBrushGrow, now, 0)
	} else if wy < 0 {
		h.input.Tap(core.ActionBrushShrink, now, 0)
	}

	result := h.game.Step(h.input.Frame(now), h.clock.Tick(now))
	h.state = result.State
	switch h.state.Status {
	case core.StatusEnded:
		h.recordScore()
	case core.StatusRunning:
		h.scoreSaved = false
	}
	return nil
}

// Draw renders the game into the window.
func (h *host) Draw(screen *ebiten.Image) {
	h.game.Render(h.buffer)
	screen.WritePixels(h.buffer.Pix())
}

// Layout tracks the window size; the game draws one pixel per screen pixel.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, hh := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != h.buffer.Width() || hh != h.buffer.Height() {
		h.buffer.Resize(w, hh)
		if r, ok := h.game.(registry.Resizer); ok {
			r.Resize(w, hh)
		}
	}
	return w, hh
}

func (h *host) recordScore() {
	if h.scoreSaved || h.store == nil || h.state.Score <= 0 {
		return
	}
	if _, err := h.store.SaveScore(h.game.ID(), h.state.Score); err != nil {
		h.logger.Warn("cannot save score", "game", h.game.ID(), "err", err)
	}
	h.scoreSaved = true
}

// Run opens a window and plays game until it is closed. The game must
// already be Reset for cfg, see WindowConfig.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	if logger == nil {
		logger = log.Default()
	}
	h := &host{
		game:   game,
		store:  store,
		logger: logger,
		buffer: core.NewPixelBuffer(cfg.ScreenW, cfg.ScreenH),
		input:  core.NewInputState(),
		clock:  core.NewFrameClock(),
		state:  game.State(),
	}

	ebiten.SetWindowTitle("sandpit - " + game.Title())
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	h.recordScore()
	return nil
}
