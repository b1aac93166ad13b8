package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/pyflare/native/options"
	"github.com/pyflare/native/platform"
	"github.com/pyflare/native/shader"
)

func init() {
	runtime.LockOSThread()
}

var triangle = []float32{
	// x, y, r, g, b
	0.0, 0.6, 1.0, 0.2, 0.2,
	-0.6, -0.6, 0.2, 1.0, 0.2,
	0.6, -0.6, 0.2, 0.2, 1.0,
}

func drawTriangle(program uint32) {
	posLoc := gl.GetAttribLocation(program, gl.Str("in_pos\x00"))
	colorLoc := gl.GetAttribLocation(program, gl.Str("in_color\x00"))

	gl.UseProgram(program)
	gl.EnableVertexAttribArray(uint32(posLoc))
	gl.EnableVertexAttribArray(uint32(colorLoc))
	// Client-side vertex arrays; a 2.1 context needs no VAO.
	gl.VertexAttribPointer(uint32(posLoc), 2, gl.FLOAT, false, 5*4, gl.Ptr(triangle))
	gl.VertexAttribPointer(uint32(colorLoc), 3, gl.FLOAT, false, 5*4, gl.Ptr(triangle[2:]))
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.DisableVertexAttribArray(uint32(posLoc))
	gl.DisableVertexAttribArray(uint32(colorLoc))
}

func run(opts options.WindowOptions, duration float64) error {
	window, err := platform.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to open window: %w", err)
	}
	defer window.Close()

	program, err := window.CreateShader(shader.DefaultVertexShader(), shader.DefaultFragmentShader())
	if err != nil {
		return fmt.Errorf("failed to create shader: %w", err)
	}
	defer window.DeleteShader(program)

	start := window.Time()
	lastReport := start
	frameCount := 0

	for window.IsOpen() {
		window.Update()
		window.Clear(0.2, 0.2, 0.25, 1.0)
		drawTriangle(program)
		window.Present()
		frameCount++

		now := window.Time()
		if now-lastReport >= 1.0 {
			mem, _ := window.MemoryUsage()
			log.Printf("FPS: %d, frame time: %.2fms, memory: %.1f MiB",
				frameCount, window.DeltaTime()*1000.0, float64(mem)/(1024*1024))
			lastReport = now
			frameCount = 0
		}
		if duration > 0 && now-start >= duration {
			break
		}
	}
	return nil
}

func main() {
	var width = flag.Int("width", 800, "Window width")
	var height = flag.Int("height", 600, "Window height")
	var title = flag.String("title", "pyflare", "Window title")
	var fullscreen = flag.Bool("fullscreen", false, "Create a fullscreen window")
	var vsync = flag.Bool("vsync", true, "Synchronize presentation to the display")
	var backend = flag.String("backend", options.BackendGLFW, "Windowing backend (glfw, sdl, headless)")
	var configPath = flag.String("config", "", "Optional YAML options file; flags override it")
	var duration = flag.Float64("duration", 0, "Exit after this many seconds (0 runs until closed)")
	var help = flag.Bool("help", false, "Show help message")

	flag.Parse()

	if *help {
		fmt.Println("PyFlare native window demo")
		flag.PrintDefaults()
		return
	}

	opts := options.Default()
	if *configPath != "" {
		var err error
		opts, err = options.Load(*configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			opts.Width = *width
		case "height":
			opts.Height = *height
		case "title":
			opts.Title = *title
		case "fullscreen":
			opts.Fullscreen = *fullscreen
		case "vsync":
			opts.VSync = *vsync
		case "backend":
			opts.Backend = *backend
		}
	})

	if err := run(opts, *duration); err != nil {
		log.Fatalf("%v", err)
	}
}
