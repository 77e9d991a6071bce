package render

import (
	_ "embed"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/leterax/go-pyramid/internal/config"
	"github.com/leterax/go-pyramid/internal/openglhelper"
	"github.com/leterax/go-pyramid/pkg/asset"
	"github.com/leterax/go-pyramid/pkg/camera"
	"github.com/leterax/go-pyramid/pkg/game"
	"github.com/leterax/go-pyramid/pkg/input"
)

var (
	//go:embed shaders/pyramid.vert
	vertexShaderSource string
	//go:embed shaders/pyramid.frag
	fragmentShaderSource string
)

// Renderer owns the window, the GPU resources and the session controller,
// and drives the frame loop
type Renderer struct {
	window     *openglhelper.Window
	shader     *openglhelper.Shader
	mesh       *openglhelper.Mesh
	texture    *openglhelper.Texture
	controller *game.Controller
	logger     zerolog.Logger

	model mgl32.Mat4

	// Timing
	lastFrameTime float64
	deltaTime     float32
}

// NewRenderer creates the window and everything drawn in it. It must be
// called on the main OS thread.
func NewRenderer(cfg config.Config, logger zerolog.Logger) (*Renderer, error) {
	logger = logger.With().Str("component", "renderer").Logger()

	bindings, err := cfg.KeyBindings()
	if err != nil {
		return nil, fmt.Errorf("failed to parse key bindings: %w", err)
	}

	// Decode before opening the window so a bad path fails fast.
	img, err := asset.LoadRGBA(cfg.Assets.Texture, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture: %w", err)
	}

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	width, height := window.Size()
	logger.Info().
		Str("gl", openglhelper.GLVersion()).
		Int("width", width).
		Int("height", height).
		Msg("Window created")

	r := &Renderer{
		window: window,
		logger: logger,
		model:  mgl32.Ident4(),
	}

	if err := r.initResources(img); err != nil {
		r.Cleanup()
		return nil, err
	}

	cam := camera.New(cfg.Camera.StartPosition(), cfg.Camera.Yaw)
	cam.SetTunables(cfg.Camera.Tunables())
	r.controller = game.NewController(cam, input.NewState(bindings), logger)

	r.bindCallbacks()

	return r, nil
}

func (r *Renderer) initResources(img *image.RGBA) error {
	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return fmt.Errorf("failed to build shader: %w", err)
	}
	r.shader = shader

	mesh, err := openglhelper.NewMesh(asset.PyramidVertices(),
		openglhelper.Attribute{Location: attribPosition, Size: 3},
		openglhelper.Attribute{Location: attribTexCoord, Size: 2},
	)
	if err != nil {
		return fmt.Errorf("failed to build pyramid mesh: %w", err)
	}
	r.mesh = mesh

	r.texture = openglhelper.NewTexture(img)
	r.logger.Debug().
		Int("width", r.texture.Width).
		Int("height", r.texture.Height).
		Msg("Texture uploaded")

	// Fixed pipeline state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r.shader.Use()
	r.shader.SetInt(uniformTexture, textureUnit)

	return nil
}

// Controller returns the session controller, e.g. to push config reloads
func (r *Renderer) Controller() *game.Controller {
	return r.controller
}

func (r *Renderer) bindCallbacks() {
	r.window.OnKey(func(key glfw.Key, action glfw.Action) {
		r.dispatch(keyEvent(key, action))
	})
	r.window.OnMouseButton(func(_ glfw.MouseButton, action glfw.Action) {
		r.dispatch(mouseButtonEvent(action))
	})
	r.window.OnMotion(func(dx, dy float64) {
		r.dispatch(game.MouseMoveEvent{DX: float32(dx), DY: float32(dy)})
	})
	r.window.OnScroll(func(yoffset float64) {
		r.dispatch(game.ScrollEvent{DY: float32(yoffset)})
	})
	r.window.OnResize(func(width, height int) {
		r.logger.Debug().Int("width", width).Int("height", height).Msg("Framebuffer resized")
	})
}

// dispatch hands an event to the controller and applies the cursor effect
func (r *Renderer) dispatch(ev game.Event) {
	if ev == nil {
		return
	}
	switch r.controller.HandleEvent(ev) {
	case game.EffectLockPointer:
		r.window.SetMouseCaptured(true)
	case game.EffectUnlockPointer:
		r.window.SetMouseCaptured(false)
	}
}

// render draws one frame with the camera's current matrices
func (r *Renderer) render() {
	r.window.Clear(clearColor)

	view, projection := r.controller.Matrices(r.window.Aspect())
	mvp := projection.Mul4(view).Mul4(r.model)

	r.shader.Use()
	r.shader.SetMat4(uniformMVP, mvp)
	r.texture.Bind(textureUnit)
	r.mesh.Draw()
}

// Run starts the main rendering loop and releases resources when the
// window closes
func (r *Renderer) Run() {
	r.lastFrameTime = r.window.Time()

	for !r.window.ShouldClose() {
		// Events first so the frame sees every input recorded before it.
		r.window.PollEvents()

		currentTime := r.window.Time()
		r.deltaTime = float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		r.controller.Update(r.deltaTime)
		r.render()

		r.window.SwapBuffers()
	}

	r.logger.Info().Msg("Window closed")
	r.Cleanup()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.texture != nil {
		r.texture.Delete()
		r.texture = nil
	}
	if r.mesh != nil {
		r.mesh.Delete()
		r.mesh = nil
	}
	if r.shader != nil {
		r.shader.Delete()
		r.shader = nil
	}
	if r.window != nil {
		r.window.Close()
		r.window = nil
	}
}
