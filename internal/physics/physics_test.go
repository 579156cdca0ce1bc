package physics

import (
	"math"
	"math/rand/v2"
	"testing"
)

// testGrid is a set of solid cells; everything outside [0,w)x[0,h) is solid.
type testGrid struct {
	w, h  int
	solid map[[2]int]bool
}

func newTestGrid(w, h int, cells ...[2]int) *testGrid {
	g := &testGrid{w: w, h: h, solid: make(map[[2]int]bool)}
	for _, c := range cells {
		g.solid[c] = true
	}
	return g
}

func (g *testGrid) Solid(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= g.w || cy >= g.h {
		return true
	}
	return g.solid[[2]int{cx, cy}]
}

func floor(g *testGrid, y int) {
	for x := 0; x < g.w; x++ {
		g.solid[[2]int{x, y}] = true
	}
}

func TestSpan(t *testing.T) {
	s := Space{Cell: 10}
	tests := []struct {
		lo, size    float64
		first, last int
	}{
		{0, 10, 0, 0},
		{0, 10.5, 0, 1},
		{5, 10, 0, 1},
		{9.999999999999, 10, 1, 1}, // float noise on a boundary snaps to it
		{20, 0, 2, 2},
		{-5, 3, -1, -1},
	}

	for _, tc := range tests {
		first, last := s.Span(tc.lo, tc.size)
		if first != tc.first || last != tc.last {
			t.Errorf("Span(%v, %v) = (%d, %d), expected (%d, %d)", tc.lo, tc.size, first, last, tc.first, tc.last)
		}
	}
}

func TestMoveXStopsFlush(t *testing.T) {
	g := newTestGrid(20, 10, [2]int{8, 4}, [2]int{2, 4})
	s := Space{Grid: g, Cell: 1}

	b := &Body{X: 5.2, Y: 4, W: 1.5, H: 1, VX: 3}
	if out := s.MoveX(b, 3, 0); out != Blocked {
		t.Fatalf("MoveX right = %v, expected Blocked", out)
	}
	if b.X != 8-1.5 {
		t.Errorf("X = %v, expected flush at %v", b.X, 8-1.5)
	}
	if b.VX != 0 {
		t.Errorf("VX = %v, expected 0 after block", b.VX)
	}

	b = &Body{X: 5.2, Y: 4, W: 1.5, H: 1, VX: -4}
	if out := s.MoveX(b, -4, 0); out != Blocked {
		t.Fatalf("MoveX left = %v, expected Blocked", out)
	}
	if b.X != 3 {
		t.Errorf("X = %v, expected flush at 3", b.X)
	}
}

func TestMoveXPassesThroughGap(t *testing.T) {
	g := newTestGrid(20, 10, [2]int{8, 2})
	s := Space{Grid: g, Cell: 1}

	b := &Body{X: 5, Y: 4, W: 1, H: 2}
	if out := s.MoveX(b, 5, 0); out != Moved {
		t.Fatalf("MoveX = %v, expected Moved", out)
	}
	if b.X != 10 {
		t.Errorf("X = %v, expected 10", b.X)
	}
}

func TestMoveXStepUp(t *testing.T) {
	tests := []struct {
		name    string
		extra   [][2]int
		outcome Outcome
	}{
		{"one block ledge", nil, Stepped},
		{"two block wall", [][2]int{{6, 7}}, Blocked},
		{"low ceiling", [][2]int{{4, 6}, {5, 6}}, Blocked},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGrid(20, 10)
			floor(g, 9)
			g.solid[[2]int{6, 8}] = true
			for _, c := range tc.extra {
				g.solid[c] = true
			}
			s := Space{Grid: g, Cell: 1}

			b := &Body{X: 4.5, Y: 7, W: 1, H: 2, Grounded: true}
			out := s.MoveX(b, 0.8, 1)
			if out != tc.outcome {
				t.Fatalf("MoveX = %v, expected %v", out, tc.outcome)
			}
			if s.BodyOverlaps(b) {
				t.Errorf("body overlaps a solid cell at (%v, %v)", b.X, b.Y)
			}
			if out == Stepped && (b.Y != 6 || math.Abs(b.X-5.3) > 1e-9) {
				t.Errorf("stepped to (%v, %v), expected (5.3, 6)", b.X, b.Y)
			}
		})
	}
}

func TestMoveYGrounded(t *testing.T) {
	g := newTestGrid(10, 10)
	floor(g, 8)
	s := Space{Grid: g, Cell: 1}

	b := &Body{X: 2, Y: 2, W: 1, H: 2, VY: 9}
	if out := s.MoveY(b, 9); out != Blocked {
		t.Fatalf("MoveY down = %v, expected Blocked", out)
	}
	if !b.Grounded {
		t.Error("blocked downward move should set Grounded")
	}
	if b.Y != 6 {
		t.Errorf("Y = %v, expected 6", b.Y)
	}

	if out := s.MoveY(b, -1.5); out != Moved {
		t.Fatalf("MoveY up = %v, expected Moved", out)
	}
	if b.Grounded {
		t.Error("completed move should clear Grounded")
	}

	if out := s.MoveY(b, -10); out != Blocked {
		t.Fatalf("MoveY into ceiling = %v, expected Blocked", out)
	}
	if b.Grounded {
		t.Error("blocked upward move must not set Grounded")
	}
	if b.Y != 0 {
		t.Errorf("Y = %v, expected flush against the top edge", b.Y)
	}
}

func TestNoOverlapAfterRandomMoves(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 0))
	g := newTestGrid(40, 30)
	for i := 0; i < 220; i++ {
		g.solid[[2]int{r.IntN(40), r.IntN(30)}] = true
	}
	s := Space{Grid: g, Cell: 18}

	for trial := 0; trial < 50; trial++ {
		b := &Body{W: 18 * 0.75, H: 18 * 1.55}
		placed := false
		for i := 0; i < 200 && !placed; i++ {
			b.X = r.Float64() * 38 * 18
			b.Y = r.Float64() * 28 * 18
			placed = !s.BodyOverlaps(b)
		}
		if !placed {
			continue
		}

		for step := 0; step < 200; step++ {
			dx := (r.Float64()*2 - 1) * 30
			dy := (r.Float64()*2 - 1) * 30
			stepH := 0.0
			if r.IntN(2) == 0 {
				stepH = 18 * 0.9
			}
			s.MoveX(b, dx, stepH)
			if s.BodyOverlaps(b) {
				t.Fatalf("trial %d step %d: overlap after MoveX at (%v, %v)", trial, step, b.X, b.Y)
			}
			out := s.MoveY(b, dy)
			if s.BodyOverlaps(b) {
				t.Fatalf("trial %d step %d: overlap after MoveY at (%v, %v)", trial, step, b.X, b.Y)
			}
			if want := out == Blocked && dy > 0; b.Grounded != want {
				t.Fatalf("trial %d step %d: Grounded = %v, expected %v", trial, step, b.Grounded, want)
			}
		}
	}
}

func TestBoundsClamp(t *testing.T) {
	b := &Body{X: -3, Y: 500}
	Bounds{MinX: 2, MinY: 0, MaxX: 100, MaxY: 80}.Clamp(b)
	if b.X != 2 || b.Y != 80 {
		t.Errorf("clamped to (%v, %v), expected (2, 80)", b.X, b.Y)
	}
}
