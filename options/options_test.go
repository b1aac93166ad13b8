package options

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	opts := Default()
	if err := opts.Validate(); err != nil {
		t.Fatalf("default options failed validation: %v", err)
	}
	if opts.GLMajor != 2 || opts.GLMinor != 1 {
		t.Errorf("default GL version = %d.%d, want 2.1", opts.GLMajor, opts.GLMinor)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.yaml")
	content := `
width: 1280
height: 720
title: demo
fullscreen: true
backend: sdl
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Width != 1280 || opts.Height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", opts.Width, opts.Height)
	}
	if opts.Title != "demo" || !opts.Fullscreen || opts.Backend != BackendSDL {
		t.Errorf("unexpected options: %+v", opts)
	}
	// Fields absent from the file keep their defaults.
	if opts.GLMajor != 2 || opts.GLMinor != 1 {
		t.Errorf("GL version = %d.%d, want default 2.1", opts.GLMajor, opts.GLMinor)
	}
	if !opts.VSync {
		t.Error("vsync default not preserved")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*WindowOptions)
		wantErr string
	}{
		{"zero width", func(o *WindowOptions) { o.Width = 0 }, "invalid window size"},
		{"negative height", func(o *WindowOptions) { o.Height = -1 }, "invalid window size"},
		{"bad backend", func(o *WindowOptions) { o.Backend = "vulkan" }, "unknown backend"},
		{"bad gl version", func(o *WindowOptions) { o.GLMajor = 0 }, "invalid GL version"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := Default()
			tc.mutate(&opts)
			err := opts.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}
