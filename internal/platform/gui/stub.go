//go:build !ebiten

package gui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/registry"
	"github.com/vovakirdan/sandpit/internal/storage"
)

// Run always fails in builds without the ebiten tag.
func Run(registry.Game, *storage.Store, *log.Logger, core.RuntimeConfig) error {
	return ErrUnavailable
}
