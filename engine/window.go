package engine

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns the GLFW window and the GL context. The render loop drives
// it from the main OS thread; callers must runtime.LockOSThread before
// creating one.
type Window struct {
	title  string
	width  int
	height int
	window *glfw.Window
}

func NewWindow(title string, width, height int) (*Window, error) {
	w := &Window{
		title:  title,
		width:  width,
		height: height,
	}

	if err := w.initGLFW(); err != nil {
		return nil, err
	}
	if err := w.initGL(); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Window) initGLFW() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return err
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	window.SetFramebufferSizeCallback(w.onResize)

	// only record the size here; the GL bindings are not loaded until
	// gl.Init runs, so the first Viewport call happens in initGL
	fw, fh := window.GetFramebufferSize()
	w.window = window
	w.width, w.height = clampSize(fw, fh)

	return nil
}

func (w *Window) initGL() error {
	if err := gl.Init(); err != nil {
		return err
	}

	gl.Viewport(0, 0, int32(w.width), int32(w.height))

	// clearing
	gl.ClearColor(0, 0, 0, 1)
	gl.ClearDepth(1)

	// depth
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	// cull face
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.CULL_FACE)

	return nil
}

func (w *Window) onResize(_ *glfw.Window, width, height int) {
	w.width, w.height = clampSize(width, height)
	gl.Viewport(0, 0, int32(w.width), int32(w.height))
}

// clampSize keeps a framebuffer size usable for Viewport and Aspect.
func clampSize(width, height int) (int, int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// Clear resets the color and depth buffers for a new frame.
func (w *Window) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (w *Window) Running() bool {
	return !w.window.ShouldClose()
}

func (w *Window) Close() {
	w.window.SetShouldClose(true)
}

// Update swaps buffers and polls input events, ending the frame.
func (w *Window) Update() {
	w.window.SwapBuffers()
	glfw.PollEvents()
}

func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Aspect returns the framebuffer aspect ratio for projection matrices.
func (w *Window) Aspect() float32 {
	return float32(w.width) / float32(w.height)
}

// GLFW exposes the underlying window for input polling.
func (w *Window) GLFW() *glfw.Window {
	return w.window
}

func (w *Window) Dispose() {
	glfw.Terminate()
}
