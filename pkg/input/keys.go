package input

import (
	"fmt"
	"strings"
)

// Key is a device key code. Values match GLFW key codes, which use ASCII
// for printable keys, so a glfw.Key converts directly.
type Key int

// Key constants for keyboard input
const (
	KeyUnknown Key = -1

	KeySpace Key = 32
	KeyA     Key = 65
	KeyC     Key = 67
	KeyD     Key = 68
	KeyE     Key = 69
	KeyQ     Key = 81
	KeyS     Key = 83
	KeyW     Key = 87
	KeyX     Key = 88
	KeyZ     Key = 90

	KeyEscape Key = 256
	KeyRight  Key = 262
	KeyLeft   Key = 263
	KeyDown   Key = 264
	KeyUp     Key = 265

	KeyLeftShift   Key = 340
	KeyLeftControl Key = 341
)

var namedKeys = map[string]Key{
	"SPACE":     KeySpace,
	"ESCAPE":    KeyEscape,
	"ESC":       KeyEscape,
	"RIGHT":     KeyRight,
	"LEFT":      KeyLeft,
	"DOWN":      KeyDown,
	"UP":        KeyUp,
	"LEFTSHIFT": KeyLeftShift,
	"SHIFT":     KeyLeftShift,
	"LEFTCTRL":  KeyLeftControl,
	"CTRL":      KeyLeftControl,
}

// ParseKey converts a key name such as "W", "up" or "space" into a Key.
// Single letters and digits map to their ASCII code.
func ParseKey(name string) (Key, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if len(n) == 1 {
		c := n[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return Key(c), nil
		}
	}
	if k, ok := namedKeys[n]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key name %q", name)
}

var keyNames = map[Key]string{
	KeySpace:       "SPACE",
	KeyEscape:      "ESCAPE",
	KeyRight:       "RIGHT",
	KeyLeft:        "LEFT",
	KeyDown:        "DOWN",
	KeyUp:          "UP",
	KeyLeftShift:   "LEFTSHIFT",
	KeyLeftControl: "LEFTCTRL",
}

func (k Key) String() string {
	if k >= 'A' && k <= 'Z' || k >= '0' && k <= '9' {
		return string(rune(k))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
