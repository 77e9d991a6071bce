package render

import "github.com/go-gl/mathgl/mgl32"

// Vertex attribute locations, matching the layout qualifiers in the shaders
const (
	attribPosition = 0
	attribTexCoord = 1
)

// Uniform names and texture units
const (
	uniformMVP     = "mvp"
	uniformTexture = "tex"
	textureUnit    = 0
)

// clearColor is the background behind the pyramid
var clearColor = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}

