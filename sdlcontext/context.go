package sdlcontext

import (
	"fmt"
	"log"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pyflare/native/options"
)

// Context implements graphics.Context on top of an SDL2 window.
type Context struct {
	window      *sdl.Window
	glContext   sdl.GLContext
	shouldClose bool
}

// New creates an SDL window with the requested GL context and returns a
// Context object. InitGraphics must have been called first.
func New(opts options.WindowOptions) (*Context, error) {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, opts.GLMajor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, opts.GLMinor)
	if opts.GLMajor >= 3 {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	}
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	var flags uint32 = sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI
	if opts.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	window, err := sdl.CreateWindow(opts.Title, sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, int32(opts.Width), int32(opts.Height), flags)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create GL context: %w", err)
	}

	interval := 0
	if opts.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Printf("swap interval %d not supported: %v", interval, err)
	}

	return &Context{window: window, glContext: glContext}, nil
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	if err := c.window.GLMakeCurrent(c.glContext); err != nil {
		log.Printf("failed to make GL context current: %v", err)
	}
}

// PollEvents drains the SDL event queue, tracking close requests.
func (c *Context) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.shouldClose = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				c.shouldClose = true
			}
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				c.shouldClose = true
			}
		}
	}
}

func (c *Context) SwapBuffers() {
	c.window.GLSwap()
}

func (c *Context) ShouldClose() bool {
	return c.shouldClose
}

func (c *Context) GetFramebufferSize() (int, int) {
	w, h := c.window.GLGetDrawableSize()
	return int(w), int(h)
}

func (c *Context) Time() float64 {
	return float64(sdl.GetPerformanceCounter()) / float64(sdl.GetPerformanceFrequency())
}

// Shutdown destroys the GL context and the window.
func (c *Context) Shutdown() {
	sdl.GLDeleteContext(c.glContext)
	c.window.Destroy()
}

// Window returns the underlying *sdl.Window.
func (c *Context) Window() *sdl.Window {
	return c.window
}

// InitGraphics initializes the SDL video subsystem. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL: %w", err)
	}
	log.Printf("SDL Initialized")
	return nil
}

// TerminateGraphics shuts down the SDL video subsystem. Must be called from the main thread.
func TerminateGraphics() {
	sdl.Quit()
	log.Printf("SDL Terminated")
}
