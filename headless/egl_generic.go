//go:build !linux

package headless

import "fmt"

// Headless is unavailable off Linux; the EGL device extensions this
// package relies on are only plumbed there.
type Headless struct{}

func New(width, height int) (*Headless, error) {
	return nil, fmt.Errorf("egl headless rendering is not supported on this platform")
}

func (h *Headless) MakeCurrent()                   {}
func (h *Headless) PollEvents()                    {}
func (h *Headless) SwapBuffers()                   {}
func (h *Headless) ShouldClose() bool              { return false }
func (h *Headless) GetFramebufferSize() (int, int) { return 0, 0 }
func (h *Headless) Time() float64                  { return 0 }
func (h *Headless) Shutdown()                      {}
