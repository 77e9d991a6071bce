package game

import "github.com/leterax/go-pyramid/pkg/input"

// Event is a window-system input event translated into toolkit-neutral form
type Event interface {
	isEvent()
}

// KeyEvent is a key press or release. Repeats are delivered as Down.
type KeyEvent struct {
	Key  input.Key
	Down bool
}

// MouseButtonEvent is a press or release of any mouse button
type MouseButtonEvent struct {
	Down bool
}

// MouseMoveEvent carries a relative pointer motion in pixels
type MouseMoveEvent struct {
	DX, DY float32
}

// ScrollEvent carries vertical wheel motion; positive scrolls up
type ScrollEvent struct {
	DY float32
}

func (KeyEvent) isEvent()         {}
func (MouseButtonEvent) isEvent() {}
func (MouseMoveEvent) isEvent()   {}
func (ScrollEvent) isEvent()      {}

// Effect is an action the window layer must take after an event
type Effect int

const (
	EffectNone Effect = iota
	EffectLockPointer
	EffectUnlockPointer
)

func (e Effect) String() string {
	switch e {
	case EffectLockPointer:
		return "lock-pointer"
	case EffectUnlockPointer:
		return "unlock-pointer"
	default:
		return "none"
	}
}
