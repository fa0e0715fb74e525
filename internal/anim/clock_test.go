package anim

import (
	"math"
	"testing"
	"time"
)

// fakeNow is a manually advanced wall clock.
type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time { return f.t }

func (f *fakeNow) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestClock() (*Clock, *fakeNow) {
	f := &fakeNow{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewClockWithNow(f.now), f
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClockStartsPaused(t *testing.T) {
	c, f := newTestClock()
	f.advance(5 * time.Second)
	if c.Playing() {
		t.Error("new clock should be paused")
	}
	if got := c.Elapsed(); got != 0 {
		t.Errorf("Elapsed() = %v, expected 0", got)
	}
}

func TestClockAccumulatesWhilePlaying(t *testing.T) {
	c, f := newTestClock()
	c.Play()
	f.advance(2 * time.Second)
	if got := c.Elapsed(); !approx(got, 2) {
		t.Errorf("Elapsed() = %v, expected 2", got)
	}
}

func TestClockPauseInvariance(t *testing.T) {
	c, f := newTestClock()
	c.Play()
	f.advance(3 * time.Second)
	c.Pause()
	frozen := c.Elapsed()

	f.advance(10 * time.Second)
	if got := c.Elapsed(); !approx(got, frozen) {
		t.Errorf("Elapsed() while paused = %v, expected %v", got, frozen)
	}

	c.Play()
	if got := c.Elapsed(); !approx(got, frozen) {
		t.Errorf("Elapsed() after resume = %v, expected %v", got, frozen)
	}
	f.advance(time.Second)
	if got := c.Elapsed(); !approx(got, frozen+1) {
		t.Errorf("Elapsed() = %v, expected %v", got, frozen+1)
	}
}

func TestClockSpeedNotRetroactive(t *testing.T) {
	c, f := newTestClock()
	c.Play()
	f.advance(4 * time.Second)
	c.SetSpeed(2)
	if got := c.Elapsed(); !approx(got, 4) {
		t.Errorf("Elapsed() after speed change = %v, expected 4", got)
	}
	f.advance(time.Second)
	if got := c.Elapsed(); !approx(got, 6) {
		t.Errorf("Elapsed() = %v, expected 6", got)
	}
}

func TestClockSpeedWhilePaused(t *testing.T) {
	c, f := newTestClock()
	c.SetSpeed(0.5)
	c.Play()
	f.advance(2 * time.Second)
	if got := c.Elapsed(); !approx(got, 1) {
		t.Errorf("Elapsed() = %v, expected 1", got)
	}
}

func TestClockResetKeepsPlayState(t *testing.T) {
	c, f := newTestClock()
	c.Play()
	f.advance(5 * time.Second)
	c.Reset()
	if !c.Playing() {
		t.Error("Reset() should not pause a playing clock")
	}
	if got := c.Elapsed(); got != 0 {
		t.Errorf("Elapsed() after reset = %v, expected 0", got)
	}
	f.advance(time.Second)
	if got := c.Elapsed(); !approx(got, 1) {
		t.Errorf("Elapsed() = %v, expected 1", got)
	}

	c.Pause()
	c.Reset()
	if c.Playing() {
		t.Error("Reset() should not start a paused clock")
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, MinSpeed},
		{0.1, MinSpeed},
		{1.5, 1.5},
		{5, MaxSpeed},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.in); got != tt.expected {
			t.Errorf("ClampSpeed(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestStepSpeed(t *testing.T) {
	c, _ := newTestClock()
	if got := c.StepSpeed(1); got != 1.25 {
		t.Errorf("StepSpeed(1) = %v, expected 1.25", got)
	}
	if got := c.StepSpeed(-20); got != MinSpeed {
		t.Errorf("StepSpeed(-20) = %v, expected %v", got, MinSpeed)
	}
}

func TestToggle(t *testing.T) {
	c, _ := newTestClock()
	if !c.Toggle() {
		t.Error("Toggle() from paused should return true")
	}
	if c.Toggle() {
		t.Error("Toggle() from playing should return false")
	}
}
