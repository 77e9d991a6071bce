package asset

// Pyramid vertex layout: position (3 floats) followed by uv (2 floats).
const (
	PyramidStride      = 5
	PyramidVertexCount = 12
)

// PyramidVertices returns the four side faces of a unit pyramid with its
// apex at (0, 0.5, 0), wound counter-clockwise when seen from outside.
// The base is open. The apex samples the centre of the texture.
func PyramidVertices() []float32 {
	return []float32{
		// Front face
		0.0, 0.5, 0.0, 0.5, 0.5,
		-0.5, -0.5, 0.5, 0.0, 1.0,
		0.5, -0.5, 0.5, 1.0, 1.0,
		// Right face
		0.0, 0.5, 0.0, 0.5, 0.5,
		0.5, -0.5, 0.5, 1.0, 1.0,
		0.5, -0.5, -0.5, 1.0, 0.0,
		// Back face
		0.0, 0.5, 0.0, 0.5, 0.5,
		0.5, -0.5, -0.5, 1.0, 0.0,
		-0.5, -0.5, -0.5, 0.0, 0.0,
		// Left face
		0.0, 0.5, 0.0, 0.5, 0.5,
		-0.5, -0.5, -0.5, 0.0, 0.0,
		-0.5, -0.5, 0.5, 0.0, 1.0,
	}
}
