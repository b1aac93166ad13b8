package platform

import (
	"strings"
	"testing"

	"github.com/pyflare/native/graphics"
	"github.com/pyflare/native/options"
)

func TestOpenRejectsInvalidOptions(t *testing.T) {
	opts := options.Default()
	opts.Width = 0
	if _, err := Open(opts); err == nil {
		t.Fatal("expected error for zero width")
	}

	opts = options.Default()
	opts.Backend = "directx"
	_, err := Open(opts)
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestClosedWindowIsInert(t *testing.T) {
	var w Window
	w.timer = graphics.NewFrameTimer(func() float64 { return 0 })

	if w.IsOpen() {
		t.Error("zero Window reports open")
	}
	if d := w.DeltaTime(); d != 0 {
		t.Errorf("DeltaTime = %v, want 0", d)
	}
	if tm := w.Time(); tm != 0 {
		t.Errorf("Time = %v, want 0", tm)
	}

	// None of these may touch GL once the context is gone.
	w.Update()
	w.Present()
	w.Clear(0, 0, 0, 1)
	w.UseShader(1)
	w.DeleteShader(1)
	w.Close()

	if _, err := w.CreateShader("x", "y"); err == nil {
		t.Error("CreateShader on closed window did not error")
	}
}
