package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-pyramid/pkg/game"
	"github.com/leterax/go-pyramid/pkg/input"
)

// keyEvent translates a GLFW key action. GLFW key codes are used as
// input.Key values unchanged. Repeats count as presses.
func keyEvent(key glfw.Key, action glfw.Action) game.Event {
	if key == glfw.KeyUnknown {
		return nil
	}
	return game.KeyEvent{Key: input.Key(key), Down: action != glfw.Release}
}

func mouseButtonEvent(action glfw.Action) game.Event {
	return game.MouseButtonEvent{Down: action != glfw.Release}
}
