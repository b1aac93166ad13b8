package options

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Backend names accepted by WindowOptions.Backend.
const (
	BackendGLFW     = "glfw"
	BackendSDL      = "sdl"
	BackendHeadless = "headless"
)

// WindowOptions describes the window and GL context to create.
type WindowOptions struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	GLMajor    int    `yaml:"gl_major"`
	GLMinor    int    `yaml:"gl_minor"`
	Backend    string `yaml:"backend"`
}

// Default returns options for a windowed 800x600 OpenGL 2.1 context.
func Default() WindowOptions {
	return WindowOptions{
		Width:   800,
		Height:  600,
		Title:   "pyflare",
		VSync:   true,
		GLMajor: 2,
		GLMinor: 1,
		Backend: BackendGLFW,
	}
}

// Load reads a YAML options file over the defaults.
func Load(path string) (WindowOptions, error) {
	opts := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}
	return opts, opts.Validate()
}

// Validate checks the options for values no backend can honor.
func (o WindowOptions) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", o.Width, o.Height)
	}
	switch o.Backend {
	case BackendGLFW, BackendSDL, BackendHeadless:
	default:
		return fmt.Errorf("unknown backend %q", o.Backend)
	}
	if o.GLMajor < 1 {
		return fmt.Errorf("invalid GL version %d.%d", o.GLMajor, o.GLMinor)
	}
	return nil
}
