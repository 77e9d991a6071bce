// Package input turns raw keyboard and mouse events into a per-frame
// snapshot of movement intent and look delta.
package input

import (
	"fmt"
	"strings"
)

// MoveFlags is a bitmask of held movement directions
type MoveFlags uint32

// Movement direction bits
const (
	MoveForward MoveFlags = 1 << iota
	MoveBack
	MoveLeft
	MoveRight
)

// Has reports whether every bit of f is set in m.
func (m MoveFlags) Has(f MoveFlags) bool {
	return m&f == f
}

func (m MoveFlags) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, d := range []struct {
		flag MoveFlags
		name string
	}{
		{MoveForward, "forward"},
		{MoveBack, "back"},
		{MoveLeft, "left"},
		{MoveRight, "right"},
	} {
		if m&d.flag != 0 {
			parts = append(parts, d.name)
		}
	}
	return strings.Join(parts, "|")
}

// Bindings maps device key codes to the movement bit they control
type Bindings map[Key]MoveFlags

// DefaultBindings returns the WASD layout.
func DefaultBindings() Bindings {
	return Bindings{
		KeyW: MoveForward,
		KeyS: MoveBack,
		KeyA: MoveLeft,
		KeyD: MoveRight,
	}
}

var directionNames = map[string]MoveFlags{
	"forward": MoveForward,
	"back":    MoveBack,
	"left":    MoveLeft,
	"right":   MoveRight,
}

// ParseBindings builds a binding table from direction → key name pairs,
// e.g. {"forward": "W"}. Directions not present keep no binding.
func ParseBindings(names map[string]string) (Bindings, error) {
	b := make(Bindings, len(names))
	for dir, keyName := range names {
		flag, ok := directionNames[strings.ToLower(dir)]
		if !ok {
			return nil, fmt.Errorf("unknown movement direction %q", dir)
		}
		key, err := ParseKey(keyName)
		if err != nil {
			return nil, fmt.Errorf("binding for %s: %w", dir, err)
		}
		if prev, taken := b[key]; taken {
			return nil, fmt.Errorf("key %s bound to both %s and %s", key, prev, flag)
		}
		b[key] = flag
	}
	return b, nil
}

// Frame is a value copy of the aggregator state
type Frame struct {
	Move   MoveFlags
	DX, DY float32
	Locked bool
}

// State accumulates input events between frame boundaries.
//
// Mouse deltas follow a three-operation contract: MouseMove records while
// the pointer is locked, ConsumeLook hands the accumulated delta to the
// camera and clears it, MouseUnlock force-clears it. EndFrame is the frame
// boundary and is safe to call after ConsumeLook.
type State struct {
	bindings Bindings

	move    MoveFlags
	mouseDX float32
	mouseDY float32
	locked  bool
}

// NewState creates an empty input state. A nil table selects DefaultBindings.
func NewState(bindings Bindings) *State {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &State{bindings: bindings}
}

// KeyDown sets the movement bit bound to key. Unbound keys are ignored.
func (s *State) KeyDown(key Key) {
	if flag, ok := s.bindings[key]; ok {
		s.move |= flag
	}
}

// KeyUp clears the movement bit bound to key. Unbound keys are ignored.
func (s *State) KeyUp(key Key) {
	if flag, ok := s.bindings[key]; ok {
		s.move &^= flag
	}
}

// MouseMove adds a pointer delta. Deltas are only recorded while locked.
func (s *State) MouseMove(dx, dy float32) {
	if !s.locked {
		return
	}
	s.mouseDX += dx
	s.mouseDY += dy
}

// MouseLock marks pointer deltas as look input.
func (s *State) MouseLock() {
	s.locked = true
}

// MouseUnlock stops recording look input and drops any unapplied delta.
func (s *State) MouseUnlock() {
	s.locked = false
	s.clearDelta()
}

// ConsumeLook returns the accumulated delta and resets it to zero.
func (s *State) ConsumeLook() (dx, dy float32) {
	dx, dy = s.mouseDX, s.mouseDY
	s.clearDelta()
	return dx, dy
}

// EndFrame clears per-frame deltas.
func (s *State) EndFrame() {
	s.clearDelta()
}

func (s *State) clearDelta() {
	s.mouseDX = 0
	s.mouseDY = 0
}

// Move returns the currently held movement bits.
func (s *State) Move() MoveFlags {
	return s.move
}

// MouseDelta returns the delta accumulated since the last frame boundary.
func (s *State) MouseDelta() (dx, dy float32) {
	return s.mouseDX, s.mouseDY
}

// Locked reports whether pointer deltas are being recorded.
func (s *State) Locked() bool {
	return s.locked
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Frame {
	return Frame{
		Move:   s.move,
		DX:     s.mouseDX,
		DY:     s.mouseDY,
		Locked: s.locked,
	}
}
