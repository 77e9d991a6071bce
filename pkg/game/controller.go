// Package game owns the per-session camera and input state and advances
// them once per frame. It has no dependency on the window system.
package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/leterax/go-pyramid/pkg/camera"
	"github.com/leterax/go-pyramid/pkg/input"
)

// pendingTunables is the capacity of the reload queue
const pendingTunables = 4

// Controller connects input events to the camera
type Controller struct {
	camera *camera.Camera
	input  *input.State
	logger zerolog.Logger

	tunables chan camera.Tunables
}

// NewController creates a controller driving cam from in.
func NewController(cam *camera.Camera, in *input.State, logger zerolog.Logger) *Controller {
	return &Controller{
		camera:   cam,
		input:    in,
		logger:   logger.With().Str("component", "controller").Logger(),
		tunables: make(chan camera.Tunables, pendingTunables),
	}
}

// Camera returns the controlled camera
func (c *Controller) Camera() *camera.Camera {
	return c.camera
}

// Input returns the input aggregator
func (c *Controller) Input() *input.State {
	return c.input
}

// HandleEvent feeds one window event into the input state. A mouse click
// locks the pointer and Escape releases it; the returned Effect tells the
// window layer to do the same to the OS cursor.
func (c *Controller) HandleEvent(ev Event) Effect {
	switch e := ev.(type) {
	case KeyEvent:
		if e.Down && e.Key == input.KeyEscape {
			if !c.input.Locked() {
				return EffectNone
			}
			c.input.MouseUnlock()
			c.logger.Debug().Msg("Pointer unlocked")
			return EffectUnlockPointer
		}
		if e.Down {
			c.input.KeyDown(e.Key)
		} else {
			c.input.KeyUp(e.Key)
		}
	case MouseButtonEvent:
		if e.Down && !c.input.Locked() {
			c.input.MouseLock()
			c.logger.Debug().Msg("Pointer locked")
			return EffectLockPointer
		}
	case MouseMoveEvent:
		c.input.MouseMove(e.DX, e.DY)
	case ScrollEvent:
		c.camera.Zoom(e.DY)
	}
	return EffectNone
}

// ApplyTunables queues new camera parameters for the next Update. It is
// safe to call from any goroutine. When the queue is full the oldest
// pending value is dropped.
func (c *Controller) ApplyTunables(t camera.Tunables) {
	for {
		select {
		case c.tunables <- t:
			return
		default:
		}
		select {
		case <-c.tunables:
		default:
		}
	}
}

// Update advances the camera by one frame of dt seconds and clears the
// frame's look delta.
func (c *Controller) Update(dt float32) {
	c.drainTunables()

	c.camera.Move(c.input.Move(), dt)
	dx, dy := c.input.ConsumeLook()
	c.camera.Look(dx, dy)

	c.input.EndFrame()
}

func (c *Controller) drainTunables() {
	for {
		select {
		case t := <-c.tunables:
			c.camera.SetTunables(t)
			c.logger.Info().
				Float32("fov", mgl32.RadToDeg(t.FOV)).
				Float32("moveSpeed", t.MoveSpeed).
				Float32("lookSpeed", t.LookSpeed).
				Msg("Applied camera tunables")
		default:
			return
		}
	}
}

// Matrices returns the view and projection matrices for the current frame.
func (c *Controller) Matrices(aspect float32) (view, projection mgl32.Mat4) {
	return c.camera.View(), c.camera.Projection(aspect)
}
