package tileworld

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/games/tileworld/terrain"
	"github.com/vovakirdan/sandpit/internal/storage"
)

const matthieuKey = "mc-lite:1518007886"

func newTestGame(t *testing.T, kv storage.KV, seedText string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.UseStore(kv, log.New(io.Discard))
	g.Reset(core.RuntimeConfig{
		ScreenW:  864,
		ScreenH:  486,
		TickRate: 60,
		SeedText: seedText,
		Surface:  core.SurfaceWindow,
	})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func idle(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		g.Step(core.NewInputFrame(), frameDT)
	}
}

// clickTile presses a pointer button over the centre of tile (tx, ty).
func clickTile(g *Game, tx, ty int, b core.Button) {
	s := g.Sim()
	t := s.Tile()
	in := core.NewInputFrame()
	in.Pointer = core.Pointer{
		X:       ((float64(tx)+0.5)*t - s.Camera.X) * g.zoom,
		Y:       ((float64(ty)+0.5)*t - s.Camera.Y) * g.zoom,
		Known:   true,
		Down:    b,
		Pressed: b,
	}
	g.Step(in, frameDT)
}

// groundBelow returns the tile under the middle of the player's feet.
func groundBelow(s *State) (int, int) {
	p := s.Player
	return s.TileAt(p.CenterX(), p.Y+p.H+1)
}

func TestGameSeedText(t *testing.T) {
	tests := []struct {
		text string
		want uint32
	}{
		{"matthieu", 1518007886},
		{"  matthieu  ", 1518007886},
		{"", 1518007886},
		{"   ", 1518007886},
		{"seed-a", 645030006},
	}
	for _, tc := range tests {
		g := newTestGame(t, storage.NewMemoryKV(), tc.text)
		if got := g.Sim().World.Base.Seed; got != tc.want {
			t.Errorf("seed text %q gave seed %d, expected %d", tc.text, got, tc.want)
		}
	}
}

func TestGameIdleUntilStart(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryKV(), "matthieu")
	st := g.State()
	if st.Status != core.StatusIdle || st.Hint != hintIdle {
		t.Fatalf("state = %+v, expected idle with start hint", st)
	}

	y := g.Sim().Player.Y
	idle(g, 30)
	if g.Sim().Player.Y != y {
		t.Error("the player should not move before Start")
	}

	g.Step(press(core.ActionStart), frameDT)
	st = g.State()
	if st.Status != core.StatusRunning || st.Hint != hintRunning {
		t.Fatalf("state = %+v, expected running with controls hint", st)
	}
	idle(g, 30)
	if g.Sim().Player.Y == y {
		t.Error("the player should fall once running")
	}

	g.Step(press(core.ActionStop), frameDT)
	if g.State().Status != core.StatusEnded {
		t.Errorf("status = %v, expected ended", g.State().Status)
	}
}

func TestGameHotbarSelection(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryKV(), "matthieu")
	if g.Selected() != terrain.Dirt {
		t.Fatalf("initial selection = %v, expected dirt", g.Selected())
	}

	tests := []struct {
		slot int
		want terrain.Kind
	}{
		{1, terrain.Grass},
		{3, terrain.Stone},
		{5, terrain.Stone}, // no such slot
		{2, terrain.Dirt},
	}
	for _, tc := range tests {
		g.Step(press(core.SlotAction(tc.slot)), frameDT)
		if g.Selected() != tc.want {
			t.Errorf("slot %d selected %v, expected %v", tc.slot, g.Selected(), tc.want)
		}
	}
}

func TestGameMinePersists(t *testing.T) {
	kv := storage.NewMemoryKV()
	g := newTestGame(t, kv, "matthieu")
	g.Step(press(core.ActionStart), frameDT)
	idle(g, 300)

	tx, ty := groundBelow(g.Sim())
	if k := g.Sim().World.Block(tx, ty); k == terrain.Air {
		t.Fatalf("expected ground below the player at %d,%d", tx, ty)
	}
	clickTile(g, tx, ty, core.ButtonPrimary)

	if got := g.Sim().World.Block(tx, ty); got != terrain.Air {
		t.Fatalf("Block(%d, %d) = %v after mining, expected air", tx, ty, got)
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, expected 1", g.State().Score)
	}
	if _, err := kv.Get(matthieuKey); err != nil {
		t.Fatalf("edits not saved under %s: %v", matthieuKey, err)
	}

	again := newTestGame(t, kv, "matthieu")
	if got := again.Sim().World.Block(tx, ty); got != terrain.Air {
		t.Errorf("reloaded Block(%d, %d) = %v, expected air", tx, ty, got)
	}

	other := newTestGame(t, kv, "seed-a")
	if other.Sim().World.Edits.Len() != 0 {
		t.Error("edits leaked into another seed")
	}
}

func TestGameResetEdits(t *testing.T) {
	kv := storage.NewMemoryKV()
	g := newTestGame(t, kv, "matthieu")
	g.Step(press(core.ActionStart), frameDT)
	idle(g, 300)

	tx, ty := groundBelow(g.Sim())
	before := g.Sim().World.Block(tx, ty)
	clickTile(g, tx, ty, core.ButtonPrimary)

	g.Step(press(core.ActionResetEdits), frameDT)
	if got := g.Sim().World.Block(tx, ty); got != before {
		t.Errorf("Block(%d, %d) = %v after reset, expected %v", tx, ty, got, before)
	}
	if _, err := kv.Get(matthieuKey); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("stored edits still present: %v", err)
	}
}

func TestGamePlaceBeside(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryKV(), "matthieu")
	g.Step(press(core.ActionStart), frameDT)
	idle(g, 300)
	g.Step(press(core.SlotAction(3)), frameDT)

	// Dig a hole next to the player, then fill it back with stone.
	tx, ty := groundBelow(g.Sim())
	clickTile(g, tx+2, ty, core.ButtonPrimary)
	if g.Sim().World.Block(tx+2, ty) != terrain.Air {
		t.Fatalf("Block(%d, %d) should be air after mining", tx+2, ty)
	}
	clickTile(g, tx+2, ty, core.ButtonSecondary)
	if got := g.Sim().World.Block(tx+2, ty); got != terrain.Stone {
		t.Errorf("Block(%d, %d) = %v, expected placed stone", tx+2, ty, got)
	}
	if g.State().Score != 2 {
		t.Errorf("score = %d, expected 2", g.State().Score)
	}
}

func TestGameCorruptEditsIgnored(t *testing.T) {
	kv := storage.NewMemoryKV()
	if err := kv.Put(matthieuKey, []byte{0xc1, 0x00}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	g := newTestGame(t, kv, "matthieu")
	if n := g.Sim().World.Edits.Len(); n != 0 {
		t.Errorf("edits = %d, expected a corrupt blob to load as empty", n)
	}
	if got := g.Sim().World.Block(0, 57); got != terrain.Grass {
		t.Errorf("Block(0, 57) = %v, expected generated grass", got)
	}
}

func TestGameClicksIgnoredWhenIdle(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryKV(), "matthieu")
	s := g.Sim()
	tx, _ := s.TileAt(s.Player.CenterX(), s.Player.CenterY())
	// Drop the idle player next to the surface so the tile below is in reach.
	top := s.World.Base.SurfaceHeight(tx)
	s.Player.Y = float64(top)*s.Tile() - s.Player.H
	vw, vh := g.viewSize()
	s.CenterCamera(vw, vh)
	_, ty := groundBelow(s)

	clickTile(g, tx, ty, core.ButtonPrimary)
	if s.World.Edits.Len() != 0 {
		t.Error("mining should be ignored before Start")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, storage.NewMemoryKV(), "matthieu")
	dst := core.NewPixelBuffer(864, 486)
	g.Render(dst)

	if got := dst.At(1, 0); got != colorSkyTop {
		t.Errorf("sky pixel = %v, expected sky %v", got, colorSkyTop)
	}

	// The player is drawn where the camera puts it.
	s := g.Sim()
	px := int((s.Player.CenterX() - s.Camera.X) * g.zoom)
	py := int((s.Player.CenterY() - s.Camera.Y) * g.zoom)
	if got := dst.At(px, py); got == colorSkyTop || got.B < 200 {
		t.Errorf("player pixel = %v, expected the player color", got)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		in := core.NewInputFrame()
		if i == 0 {
			in.Hold(core.ActionStart)
		}
		if i%120 < 70 {
			in.Held.Put(core.ActionRight)
		}
		if i%45 < 10 {
			in.Held.Put(core.ActionUp)
		}
		inputs[i] = in
	}

	run := func() *Game {
		g := newTestGame(t, storage.NewMemoryKV(), "determinism")
		for _, in := range inputs {
			g.Step(in, frameDT)
		}
		return g
	}

	g1, g2 := run(), run()
	if g1.Sim().Player != g2.Sim().Player {
		t.Errorf("Determinism failed: players differ. Run1=%+v, Run2=%+v", g1.Sim().Player, g2.Sim().Player)
	}
	if g1.Sim().Camera != g2.Sim().Camera {
		t.Error("Determinism failed: cameras differ")
	}
}
