// Package gui runs games in a native window. The window host needs the
// ebiten build tag; without it Run reports ErrUnavailable.
package gui

import (
	"errors"

	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/registry"
)

// ErrUnavailable is returned by Run in builds without the window host.
var ErrUnavailable = errors.New("gui: built without the ebiten tag")

// WindowConfig fills in the window surface for game. A zero size falls back
// to the game's preferred size, then to the defaults.
func WindowConfig(game registry.Game, cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.Surface = core.SurfaceWindow
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
		if s, ok := game.(registry.Sizer); ok {
			cfg.ScreenW, cfg.ScreenH = s.PreferredSize(core.SurfaceWindow)
		}
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return cfg
}
