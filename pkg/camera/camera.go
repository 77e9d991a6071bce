// Package camera implements a free-flying first-person camera.
//
// Yaw is measured from the +Z axis rotating toward +X, pitch from the
// horizontal plane. Both are in radians.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-pyramid/pkg/input"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Tunables holds the per-camera parameters that do not change every frame
type Tunables struct {
	FOV       float32 // vertical field of view, radians
	Near      float32
	Far       float32
	MoveSpeed float32 // world units per second
	LookSpeed float32 // radians per unit of pointer delta
	PitchMax  float32 // must stay below pi/2
}

// DefaultTunables returns the tunables a new camera starts with.
func DefaultTunables() Tunables {
	return Tunables{
		FOV:       DefaultFOV,
		Near:      DefaultNear,
		Far:       DefaultFar,
		MoveSpeed: DefaultMoveSpeed,
		LookSpeed: DefaultLookSpeed,
		PitchMax:  DefaultPitchMax,
	}
}

// Camera implements a 3D camera for navigation
type Camera struct {
	position mgl32.Vec3

	// Euler angles
	yaw   float32
	pitch float32

	Tunables
}

// New creates a camera at position facing yaw, level with the ground.
func New(position mgl32.Vec3, yaw float32) *Camera {
	return &Camera{
		position: position,
		yaw:      yaw,
		Tunables: DefaultTunables(),
	}
}

func sincos(a float32) (sin, cos float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

// Forward returns the unit view direction, including pitch.
func (c *Camera) Forward() mgl32.Vec3 {
	sy, cy := sincos(c.yaw)
	sp, cp := sincos(c.pitch)
	return mgl32.Vec3{cp * sy, sp, cp * cy}
}

// groundBasis returns the horizontal forward and right vectors. Pitch is
// ignored so walking forward never leaves the ground plane.
func (c *Camera) groundBasis() (forward, right mgl32.Vec3) {
	sy, cy := sincos(c.yaw)
	return mgl32.Vec3{sy, 0, cy}, mgl32.Vec3{-cy, 0, sy}
}

// Right returns the horizontal right vector.
func (c *Camera) Right() mgl32.Vec3 {
	_, right := c.groundBasis()
	return right
}

// View returns the current right-handed view matrix
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.Forward()), worldUp)
}

// Projection returns a right-handed perspective projection for aspect.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjection returns Projection(aspect) * View().
func (c *Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}

// Move translates the camera along the ground plane for each direction bit
// in flags. Opposing bits cancel; combined bits are not normalized, so a
// diagonal covers sqrt(2) times the distance of a single direction.
func (c *Camera) Move(flags input.MoveFlags, dt float32) {
	forward, right := c.groundBasis()
	speed := c.MoveSpeed * dt

	if flags&input.MoveForward != 0 {
		c.position = c.position.Add(forward.Mul(speed))
	}
	if flags&input.MoveBack != 0 {
		c.position = c.position.Sub(forward.Mul(speed))
	}
	if flags&input.MoveRight != 0 {
		c.position = c.position.Add(right.Mul(speed))
	}
	if flags&input.MoveLeft != 0 {
		c.position = c.position.Sub(right.Mul(speed))
	}
}

// Look rotates the camera by a pointer delta. Positive dx turns right,
// positive dy looks down.
func (c *Camera) Look(dx, dy float32) {
	c.yaw -= dx * c.LookSpeed
	c.pitch -= dy * c.LookSpeed
	c.clampPitch()
}

func (c *Camera) clampPitch() {
	c.pitch = mgl32.Clamp(c.pitch, -c.PitchMax, c.PitchMax)
}

// Zoom narrows the field of view by delta degrees, keeping it within
// [MinFOV, MaxFOV].
func (c *Camera) Zoom(delta float32) {
	fov := mgl32.RadToDeg(c.FOV) - delta
	c.FOV = mgl32.DegToRad(mgl32.Clamp(fov, MinFOV, MaxFOV))
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetOrientation sets yaw and pitch. Pitch is clamped.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = pitch
	c.clampPitch()
}

// SetTunables replaces the camera parameters and re-clamps pitch to the
// new bound.
func (c *Camera) SetTunables(t Tunables) {
	c.Tunables = t
	c.clampPitch()
}
