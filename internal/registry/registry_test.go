package registry

import (
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/storage"
)

type stubGame struct {
	store  storage.KV
	resets int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.PixelBuffer) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) UseStore(kv storage.KV, _ *log.Logger) { g.store = kv }

func init() {
	Register("stub", func() Game { return &stubGame{} })
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register("stub", func() Game { return &stubGame{} })
}

func TestListAndCreate(t *testing.T) {
	found := false
	for _, info := range List() {
		if info.ID == "stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the stub game")
	}

	if !Exists("stub") {
		t.Error("Exists(stub) = false")
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}
}

func TestPrepareHandsOverStore(t *testing.T) {
	kv := storage.NewMemoryKV()
	g, err := Prepare("stub", core.DefaultConfig(), kv, nil)
	if err != nil {
		t.Fatalf("Prepare() failed: %v", err)
	}
	stub := g.(*stubGame)
	if stub.store != kv {
		t.Error("Prepare() should pass the store to a Persistent game")
	}
	if stub.resets != 1 {
		t.Errorf("resets = %d, expected 1", stub.resets)
	}
}
