package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripedPNG encodes a 2x3 image with a red top row, a green middle row and
// a blue bottom row.
func stripedPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	rows := []color.NRGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	for y, c := range rows {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeRGBA(t *testing.T) {
	img, err := DecodeRGBA(bytes.NewReader(stripedPNG(t)), false)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 2, 3), img.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 2))
	assert.Len(t, img.Pix, 2*3*4)
}

func TestDecodeRGBAFlipped(t *testing.T) {
	img, err := DecodeRGBA(bytes.NewReader(stripedPNG(t)), true)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(1, 2))
}

func TestDecodeRGBARejectsGarbage(t *testing.T) {
	_, err := DecodeRGBA(strings.NewReader("not an image"), true)
	assert.Error(t, err)
}

func TestLoadRGBA(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")
	require.NoError(t, os.WriteFile(path, stripedPNG(t), 0644))

	img, err := LoadRGBA(path, true)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
}

func TestLoadRGBAMissingFile(t *testing.T) {
	_, err := LoadRGBA(filepath.Join(t.TempDir(), "missing.png"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open texture file")
}

func TestPyramidVertices(t *testing.T) {
	v := PyramidVertices()
	require.Len(t, v, PyramidVertexCount*PyramidStride)

	vertex := func(i int) mgl32.Vec3 {
		o := i * PyramidStride
		return mgl32.Vec3{v[o], v[o+1], v[o+2]}
	}

	for face := 0; face < PyramidVertexCount/3; face++ {
		a, b, c := vertex(face*3), vertex(face*3+1), vertex(face*3+2)

		assert.Equal(t, mgl32.Vec3{0, 0.5, 0}, a, "face %d starts at the apex", face)

		// Counter-clockwise from outside: the normal points away from the
		// pyramid's centre.
		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
		assert.Greater(t, normal.Dot(centroid), float32(0), "face %d", face)
	}

	for i := 0; i < PyramidVertexCount; i++ {
		u, w := v[i*PyramidStride+3], v[i*PyramidStride+4]
		assert.True(t, u >= 0 && u <= 1 && w >= 0 && w <= 1, "uv of vertex %d", i)
	}
}
