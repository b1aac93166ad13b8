package graphics

// Context defines the interface for an OpenGL context.
type Context interface {
	// MakeCurrent makes the context current for the calling goroutine.
	MakeCurrent()
	// PollEvents drains the backend's event queue.
	PollEvents()
	// SwapBuffers presents the back buffer.
	SwapBuffers()
	ShouldClose() bool
	GetFramebufferSize() (int, int)
	// Time returns seconds on the backend's monotonic clock.
	Time() float64
	Shutdown()
}
