package graphics

import "testing"

func TestFrameTimerFirstTickIsZero(t *testing.T) {
	clock := 10.0
	timer := NewFrameTimer(func() float64 { return clock })
	if d := timer.Tick(); d != 0 {
		t.Fatalf("first tick = %v, want 0", d)
	}
}

func TestFrameTimerMeasuresElapsed(t *testing.T) {
	clock := 0.0
	timer := NewFrameTimer(func() float64 { return clock })
	timer.Tick()

	steps := []float64{0.016, 0.033, 1.5, 0.0}
	for _, step := range steps {
		clock += step
		if d := timer.Tick(); d != step {
			t.Errorf("tick after advancing %v returned %v", step, d)
		}
		if timer.Delta() < 0 {
			t.Errorf("delta went negative: %v", timer.Delta())
		}
	}
}

func TestFrameTimerClampsBackwardClock(t *testing.T) {
	clock := 100.0
	timer := NewFrameTimer(func() float64 { return clock })
	timer.Tick()

	clock = 99.0 // clock jumped backwards
	if d := timer.Tick(); d != 0 {
		t.Fatalf("tick with backward clock = %v, want 0", d)
	}

	clock = 99.5
	if d := timer.Tick(); d != 0.5 {
		t.Fatalf("tick after recovery = %v, want 0.5", d)
	}
}

func TestFrameTimerDeltaUnchangedBetweenTicks(t *testing.T) {
	clock := 0.0
	timer := NewFrameTimer(func() float64 { return clock })
	timer.Tick()
	clock = 0.25
	timer.Tick()

	clock = 5.0 // advancing the clock alone must not move the delta
	if d := timer.Delta(); d != 0.25 {
		t.Fatalf("delta = %v, want 0.25", d)
	}
}
