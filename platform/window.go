// Package platform is the engine's native layer: it owns the window,
// the OpenGL context, the event pump, and frame timing.
package platform

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/pyflare/native/glfwcontext"
	"github.com/pyflare/native/graphics"
	"github.com/pyflare/native/headless"
	"github.com/pyflare/native/options"
	"github.com/pyflare/native/sdlcontext"
	"github.com/pyflare/native/shader"
	"github.com/pyflare/native/sysinfo"
)

// Window owns a native window and its GL context. It is valid between
// Open and Close; every method on a closed Window is a safe no-op
// returning zero values. A Window must stay on the goroutine that
// opened it.
type Window struct {
	ctx       graphics.Context
	terminate func()
	timer     *graphics.FrameTimer
	width     int
	height    int
	open      bool
}

// Open creates a window with a GL context per the options, makes the
// context current, and applies the engine's initial GL state.
func Open(opts options.WindowOptions) (*Window, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ctx, terminate, err := newContext(opts)
	if err != nil {
		return nil, err
	}

	ctx.MakeCurrent()
	if err := gl.Init(); err != nil {
		ctx.Shutdown()
		terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	w := &Window{
		ctx:       ctx,
		terminate: terminate,
		timer:     graphics.NewFrameTimer(ctx.Time),
		open:      true,
	}
	w.width, w.height = ctx.GetFramebufferSize()
	w.initGLState()

	log.Printf("Native window created: %dx%d", w.width, w.height)
	log.Printf("OpenGL Version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Printf("OpenGL Vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	log.Printf("OpenGL Renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))

	return w, nil
}

func newContext(opts options.WindowOptions) (graphics.Context, func(), error) {
	switch opts.Backend {
	case options.BackendGLFW:
		if err := glfwcontext.InitGraphics(); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize glfw: %w", err)
		}
		ctx, err := glfwcontext.New(opts)
		if err != nil {
			glfwcontext.TerminateGraphics()
			return nil, nil, err
		}
		return ctx, glfwcontext.TerminateGraphics, nil
	case options.BackendSDL:
		if err := sdlcontext.InitGraphics(); err != nil {
			return nil, nil, err
		}
		ctx, err := sdlcontext.New(opts)
		if err != nil {
			sdlcontext.TerminateGraphics()
			return nil, nil, err
		}
		return ctx, sdlcontext.TerminateGraphics, nil
	case options.BackendHeadless:
		ctx, err := headless.New(opts.Width, opts.Height)
		if err != nil {
			return nil, nil, err
		}
		return ctx, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", opts.Backend)
	}
}

// initGLState applies the fixed state the engine renders against:
// alpha blending and LEQUAL depth testing over a dark clear color.
func (w *Window) initGLState() {
	gl.Viewport(0, 0, int32(w.width), int32(w.height))
	gl.ClearColor(0.2, 0.2, 0.25, 1.0)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
}

// Close destroys the context and the window. It is idempotent.
func (w *Window) Close() {
	if w.ctx == nil {
		return
	}
	w.ctx.Shutdown()
	w.terminate()
	w.ctx = nil
	w.open = false
	log.Printf("Native window destroyed")
}

// Update pumps the event queue, refreshes the stored size, and advances
// the frame timer. Call once per frame before rendering.
func (w *Window) Update() {
	if w.ctx == nil {
		return
	}
	w.ctx.PollEvents()
	if w.ctx.ShouldClose() {
		w.open = false
	}

	width, height := w.ctx.GetFramebufferSize()
	if width != w.width || height != w.height {
		w.width, w.height = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
	}

	w.timer.Tick()
}

// Present swaps the back buffer.
func (w *Window) Present() {
	if w.ctx == nil {
		return
	}
	w.ctx.SwapBuffers()
}

// IsOpen reports whether the window is still accepting frames. It goes
// false once the user closes the window or Close is called.
func (w *Window) IsOpen() bool {
	return w.open
}

// Size returns the framebuffer size as of the last Update.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// DeltaTime returns the seconds elapsed between the two most recent
// Update calls. It is never negative.
func (w *Window) DeltaTime() float64 {
	return w.timer.Delta()
}

// Time returns seconds on the context's monotonic clock.
func (w *Window) Time() float64 {
	if w.ctx == nil {
		return 0
	}
	return w.ctx.Time()
}

// Clear clears the color and depth buffers to the given color.
func (w *Window) Clear(r, g, b, a float32) {
	if w.ctx == nil {
		return
	}
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// CreateShader compiles and links a vertex/fragment pair into a program.
func (w *Window) CreateShader(vertexSrc, fragmentSrc string) (uint32, error) {
	if w.ctx == nil {
		return 0, fmt.Errorf("window is closed")
	}
	return shader.NewProgram(vertexSrc, fragmentSrc)
}

// UseShader binds the program for rendering.
func (w *Window) UseShader(program uint32) {
	if w.ctx == nil {
		return
	}
	shader.Use(program)
}

// DeleteShader frees the program.
func (w *Window) DeleteShader(program uint32) {
	if w.ctx == nil {
		return
	}
	shader.Delete(program)
}

// MemoryUsage returns the resident memory of the process in bytes, or 0
// on platforms without support.
func (w *Window) MemoryUsage() (int64, error) {
	return sysinfo.ProcessMemory()
}

// Context exposes the underlying graphics context for callers that need
// backend-specific features such as key callbacks.
func (w *Window) Context() graphics.Context {
	return w.ctx
}
