package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow    *glfw.Window
	width         int
	height        int
	title         string
	mouseCaptured bool

	// Cursor tracking for relative motion
	lastX       float64
	lastY       float64
	firstMotion bool

	onKey         func(key glfw.Key, action glfw.Action)
	onMouseButton func(button glfw.MouseButton, action glfw.Action)
	onMotion      func(dx, dy float64)
	onScroll      func(yoffset float64)
	onResize      func(width, height int)
}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	// Create window
	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// The framebuffer can differ from the window size on HiDPI displays.
	fbWidth, fbHeight := glfwWindow.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	w := &Window{
		glfwWindow:  glfwWindow,
		width:       fbWidth,
		height:      fbHeight,
		title:       title,
		firstMotion: true,
	}

	glfwWindow.SetKeyCallback(w.keyCallback)
	glfwWindow.SetMouseButtonCallback(w.mouseButtonCallback)
	glfwWindow.SetCursorPosCallback(w.cursorPosCallback)
	glfwWindow.SetScrollCallback(w.scrollCallback)
	glfwWindow.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	return w, nil
}

// GLVersion returns the OpenGL version string of the current context
func GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Clear clears the color and depth buffers
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events. Callbacks run on this goroutine.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the framebuffer dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Aspect returns width / height, or 1 while minimized.
func (w *Window) Aspect() float32 {
	if w.height == 0 {
		return 1
	}
	return float32(w.width) / float32(w.height)
}

// Time returns seconds since GLFW was initialized
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// OnKey sets the key callback
func (w *Window) OnKey(fn func(key glfw.Key, action glfw.Action)) {
	w.onKey = fn
}

// OnMouseButton sets the mouse button callback
func (w *Window) OnMouseButton(fn func(button glfw.MouseButton, action glfw.Action)) {
	w.onMouseButton = fn
}

// OnMotion sets the callback for relative cursor motion in pixels
func (w *Window) OnMotion(fn func(dx, dy float64)) {
	w.onMotion = fn
}

// OnScroll sets the vertical scroll callback
func (w *Window) OnScroll(fn func(yoffset float64)) {
	w.onScroll = fn
}

// OnResize sets the framebuffer resize callback. The viewport is updated
// before fn runs.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if w.onKey != nil {
		w.onKey(key, action)
	}
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if w.onMouseButton != nil {
		w.onMouseButton(button, action)
	}
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if w.firstMotion {
		w.lastX, w.lastY = xpos, ypos
		w.firstMotion = false
		return
	}

	dx, dy := xpos-w.lastX, ypos-w.lastY
	w.lastX, w.lastY = xpos, ypos

	if w.onMotion != nil && (dx != 0 || dy != 0) {
		w.onMotion(dx, dy)
	}
}

func (w *Window) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	if w.onScroll != nil {
		w.onScroll(yoffset)
	}
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// SetMouseCaptured hides and locks the cursor for mouse-look, or releases
// it. Raw motion is used when the platform supports it.
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured
	// Switching cursor mode makes GLFW report a jump in position.
	w.firstMotion = true

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			w.glfwWindow.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	} else {
		if glfw.RawMouseMotionSupported() {
			w.glfwWindow.SetInputMode(glfw.RawMouseMotion, glfw.False)
		}
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// IsMouseCaptured returns whether the mouse is currently captured
func (w *Window) IsMouseCaptured() bool {
	return w.mouseCaptured
}

// SetShouldClose requests the main loop to exit
func (w *Window) SetShouldClose(v bool) {
	w.glfwWindow.SetShouldClose(v)
}
