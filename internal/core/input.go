package core

import (
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Action represents a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow
	ActionRight              // D, Right arrow
	ActionUp                 // W, Up arrow, Space - jump or swim up
	ActionDown               // S, Down arrow - swim down
	ActionStart              // Enter - start or restart the world
	ActionStop               // X - stop the running simulation
	ActionPause              // P - freeze the simulation
	ActionClear              // C - wipe the sandbox
	ActionResetEdits         // Backspace - drop persisted world edits
	ActionSlot1              // 1..7 select a tool or hotbar slot
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionSlot6
	ActionSlot7
	ActionBrushGrow   // ] or +
	ActionBrushShrink // [ or -
	ActionBack        // Esc - back to menu
	ActionQuit        // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionStart:       "Start",
	ActionStop:        "Stop",
	ActionPause:       "Pause",
	ActionClear:       "Clear",
	ActionResetEdits:  "ResetEdits",
	ActionSlot1:       "Slot1",
	ActionSlot2:       "Slot2",
	ActionSlot3:       "Slot3",
	ActionSlot4:       "Slot4",
	ActionSlot5:       "Slot5",
	ActionSlot6:       "Slot6",
	ActionSlot7:       "Slot7",
	ActionBrushGrow:   "BrushGrow",
	ActionBrushShrink: "BrushShrink",
	ActionBack:        "Back",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Slot returns the 1-based slot number of a slot action, or 0.
func (a Action) Slot() int {
	if a >= ActionSlot1 && a <= ActionSlot7 {
		return int(a-ActionSlot1) + 1
	}
	return 0
}

// SlotAction returns the action selecting slot n (1-based), or ActionNone.
func SlotAction(n int) Action {
	if n < 1 || n > 7 {
		return ActionNone
	}
	return ActionSlot1 + Action(n-1)
}

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

// Pointer is the last known pointer state in surface pixel coordinates.
type Pointer struct {
	X, Y    float64
	Known   bool   // a position has been reported at least once
	Down    Button // held button, ButtonNone when released
	Pressed Button // button that went down since the previous frame
}

// InputFrame is the input sampled for one simulation tick.
// Held holds actions that are currently down; Pressed holds actions that went
// down since the previous frame.
type InputFrame struct {
	Held    mapset.Set[Action]
	Pressed mapset.Set[Action]
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    mapset.New[Action](),
		Pressed: mapset.New[Action](),
	}
}

// Has reports whether the action is held this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Held.Has(a)
}

// JustPressed reports whether the action went down this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Pressed.Has(a)
}

// Hold marks an action as held and newly pressed. Intended for tests and
// scripted input.
func (f *InputFrame) Hold(a Action) {
	f.Held.Put(a)
	f.Pressed.Put(a)
}

// InputState accumulates input events between ticks. Event callbacks write to
// it and the tick reads a snapshot through Frame.
//
// Hosts without key-up events (terminals) report presses with Tap; such a key
// stays held until its deadline passes without another repeat.
type InputState struct {
	held     mapset.Set[Action]
	pressed  mapset.Set[Action]
	deadline map[Action]time.Time
	pointer  Pointer
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{
		held:     mapset.New[Action](),
		pressed:  mapset.New[Action](),
		deadline: make(map[Action]time.Time),
	}
}

// Press records a key-down.
func (s *InputState) Press(a Action) {
	if a == ActionNone {
		return
	}
	if !s.held.Has(a) {
		s.pressed.Put(a)
	}
	s.held.Put(a)
	delete(s.deadline, a)
}

// Release records a key-up.
func (s *InputState) Release(a Action) {
	s.held.Remove(a)
	delete(s.deadline, a)
}

// Tap records a key press that auto-releases after hold unless repeated.
func (s *InputState) Tap(a Action, now time.Time, hold time.Duration) {
	if a == ActionNone {
		return
	}
	if !s.held.Has(a) {
		s.pressed.Put(a)
	}
	s.held.Put(a)
	s.deadline[a] = now.Add(hold)
}

// PointerMove records the latest pointer position.
func (s *InputState) PointerMove(x, y float64) {
	s.pointer.X = x
	s.pointer.Y = y
	s.pointer.Known = true
}

// PointerDown records a button press at (x, y).
func (s *InputState) PointerDown(b Button, x, y float64) {
	s.PointerMove(x, y)
	s.pointer.Down = b
	s.pointer.Pressed = b
}

// PointerUp records that all buttons were released.
func (s *InputState) PointerUp() {
	s.pointer.Down = ButtonNone
}

// Frame snapshots the state for one tick and clears the pressed edges.
// Tapped keys whose deadline has passed are released first.
func (s *InputState) Frame(now time.Time) InputFrame {
	for a, until := range s.deadline {
		if !now.Before(until) {
			s.held.Remove(a)
			delete(s.deadline, a)
		}
	}

	f := NewInputFrame()
	s.held.Each(func(a Action) {
		f.Held.Put(a)
	})
	s.pressed.Each(func(a Action) {
		f.Pressed.Put(a)
	})
	f.Pointer = s.pointer

	s.pressed = mapset.New[Action]()
	s.pointer.Pressed = ButtonNone
	return f
}
