// Package anim provides the animation clock and the single-threaded tick
// scheduler that drives frame redraws.
package anim

import "time"

// Speed limits and step used by the speed controls.
const (
	MinSpeed     = 0.25
	MaxSpeed     = 3.0
	SpeedStep    = 0.25
	DefaultSpeed = 1.0
)

// Clock tracks animation time in seconds. Time accumulates only while
// playing, scaled by the current speed. Pausing freezes the elapsed value
// and speed changes only affect time accumulated afterwards.
type Clock struct {
	now     func() time.Time
	playing bool
	speed   float64
	banked  float64   // seconds accumulated before the current run
	since   time.Time // start of the current run, valid while playing
}

// NewClock returns a paused clock at zero using the wall clock.
func NewClock() *Clock {
	return NewClockWithNow(time.Now)
}

// NewClockWithNow returns a paused clock reading time from now.
func NewClockWithNow(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, speed: DefaultSpeed}
}

// run returns the scaled seconds of the current run.
func (c *Clock) run() float64 {
	if !c.playing {
		return 0
	}
	return c.now().Sub(c.since).Seconds() * c.speed
}

// bank folds the current run into banked time and restarts the run.
func (c *Clock) bank() {
	c.banked += c.run()
	c.since = c.now()
}

// Elapsed returns the animation time in seconds.
func (c *Clock) Elapsed() float64 {
	return c.banked + c.run()
}

// Playing reports whether time is advancing.
func (c *Clock) Playing() bool {
	return c.playing
}

// Play resumes accumulation. It is a no-op if already playing.
func (c *Clock) Play() {
	if c.playing {
		return
	}
	c.playing = true
	c.since = c.now()
}

// Pause freezes elapsed time. It is a no-op if already paused.
func (c *Clock) Pause() {
	if !c.playing {
		return
	}
	c.bank()
	c.playing = false
}

// Toggle switches between playing and paused and returns the new state.
func (c *Clock) Toggle() bool {
	if c.playing {
		c.Pause()
	} else {
		c.Play()
	}
	return c.playing
}

// SetPlaying plays or pauses the clock.
func (c *Clock) SetPlaying(playing bool) {
	if playing {
		c.Play()
	} else {
		c.Pause()
	}
}

// Reset zeroes elapsed time without changing the play state.
func (c *Clock) Reset() {
	c.banked = 0
	c.since = c.now()
}

// Speed returns the current multiplier.
func (c *Clock) Speed() float64 {
	return c.speed
}

// SetSpeed changes the multiplier for time accumulated from now on.
// Values are clamped to [MinSpeed, MaxSpeed].
func (c *Clock) SetSpeed(speed float64) {
	if c.playing {
		c.bank()
	}
	c.speed = ClampSpeed(speed)
}

// StepSpeed adjusts the speed by n increments of SpeedStep.
func (c *Clock) StepSpeed(n int) float64 {
	c.SetSpeed(c.speed + float64(n)*SpeedStep)
	return c.speed
}

// ClampSpeed limits speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed float64) float64 {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}
