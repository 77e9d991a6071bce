package camera

import "math"

// Camera constants
const (
	// Movement speeds
	DefaultMoveSpeed = 4.0   // world units per second
	DefaultLookSpeed = 0.002 // radians per pixel

	// Projection
	DefaultFOV  = math.Pi / 4 // 45 degrees
	DefaultNear = 0.1
	DefaultFar  = 100.0

	// Zoom range, degrees
	MinFOV = 1.0
	MaxFOV = 45.0

	// Constraints
	DefaultPitchMax = 1.5 // just under 90 degrees
)
