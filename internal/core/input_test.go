package core

import (
	"testing"
	"time"
)

func TestInputStatePressRelease(t *testing.T) {
	s := NewInputState()
	now := time.Unix(0, 0)

	s.Press(ActionLeft)
	f := s.Frame(now)
	if !f.Has(ActionLeft) || !f.JustPressed(ActionLeft) {
		t.Fatal("first frame after Press should report held and pressed")
	}

	f = s.Frame(now)
	if !f.Has(ActionLeft) {
		t.Error("key should stay held until released")
	}
	if f.JustPressed(ActionLeft) {
		t.Error("pressed edge should only be reported once")
	}

	s.Release(ActionLeft)
	if s.Frame(now).Has(ActionLeft) {
		t.Error("released key still held")
	}
}

func TestInputStateTapExpires(t *testing.T) {
	s := NewInputState()
	start := time.Unix(100, 0)
	hold := 150 * time.Millisecond

	s.Tap(ActionRight, start, hold)
	if !s.Frame(start.Add(100 * time.Millisecond)).Has(ActionRight) {
		t.Error("tapped key should be held before its deadline")
	}

	// A repeat extends the deadline
	s.Tap(ActionRight, start.Add(120*time.Millisecond), hold)
	if !s.Frame(start.Add(200 * time.Millisecond)).Has(ActionRight) {
		t.Error("repeated tap should extend the hold")
	}

	if s.Frame(start.Add(300 * time.Millisecond)).Has(ActionRight) {
		t.Error("tapped key should release after its deadline")
	}
}

func TestInputStatePointer(t *testing.T) {
	s := NewInputState()
	now := time.Unix(0, 0)

	s.PointerDown(ButtonSecondary, 3, 4)
	f := s.Frame(now)
	if f.Pointer.Down != ButtonSecondary || f.Pointer.Pressed != ButtonSecondary {
		t.Errorf("pointer = %+v, expected secondary down and pressed", f.Pointer)
	}
	if !f.Pointer.Known || f.Pointer.X != 3 || f.Pointer.Y != 4 {
		t.Errorf("pointer position = %+v, expected (3, 4)", f.Pointer)
	}

	s.PointerMove(5, 6)
	f = s.Frame(now)
	if f.Pointer.Pressed != ButtonNone {
		t.Error("pointer press edge should clear after one frame")
	}
	if f.Pointer.Down != ButtonSecondary {
		t.Error("button should stay down while dragging")
	}

	s.PointerUp()
	if s.Frame(now).Pointer.Down != ButtonNone {
		t.Error("button should be up after PointerUp")
	}
}

func TestSlotActions(t *testing.T) {
	for n := 1; n <= 7; n++ {
		if got := SlotAction(n).Slot(); got != n {
			t.Errorf("SlotAction(%d).Slot() = %d", n, got)
		}
	}
	if SlotAction(0) != ActionNone || SlotAction(8) != ActionNone {
		t.Error("out of range slots should map to ActionNone")
	}
	if ActionLeft.Slot() != 0 {
		t.Error("non-slot action should report slot 0")
	}
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock()
	t0 := time.Unix(10, 0)

	if dt := c.Tick(t0); dt != 0 {
		t.Errorf("first Tick = %v, expected 0", dt)
	}
	if dt := c.Tick(t0.Add(16 * time.Millisecond)); dt < 0.0159 || dt > 0.0161 {
		t.Errorf("Tick after 16ms = %v", dt)
	}
	if dt := c.Tick(t0.Add(5 * time.Second)); dt != MaxFrameDelta.Seconds() {
		t.Errorf("Tick after a long pause = %v, expected clamp to %v", dt, MaxFrameDelta.Seconds())
	}
	if dt := ClampDelta(-1); dt != 0 {
		t.Errorf("ClampDelta(-1) = %v, expected 0", dt)
	}
}
