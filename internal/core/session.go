package core

import (
	"fmt"
	"image"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/vovakirdan/artgrid/internal/anim"
	"github.com/vovakirdan/artgrid/internal/config"
	"github.com/vovakirdan/artgrid/internal/grid"
	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/pattern"
	"github.com/vovakirdan/artgrid/internal/seed"
	"github.com/vovakirdan/artgrid/internal/tiles"
)

// Session is the live state behind an interactive viewer: the settings,
// the animation clock and scheduler, and the current tile batch and frame.
// It is not safe for concurrent use; the host loop owns it.
type Session struct {
	settings  config.Settings
	clock     *anim.Clock
	scheduler *anim.Scheduler
	renderer  *grid.Renderer
	render    config.RenderConfig
	rng       *rand.Rand

	specs   []tiles.Spec
	frame   *image.RGBA
	frameT  float64
	stale   bool
	batches int
	cancel  func()
}

// NewSession builds a session from settings. Tiles are rendered at
// render.TileSize; the clock starts playing when settings.IsAnimating is set.
// An unset seed is replaced by a fresh one so every batch is reproducible.
func NewSession(settings config.Settings, render config.RenderConfig, clock *anim.Clock) *Session {
	if clock == nil {
		clock = anim.NewClock()
	}
	settings = withSeed(settings.Normalize())
	clock.SetSpeed(settings.AnimationSpeed)
	clock.SetPlaying(settings.IsAnimating)

	s := &Session{
		settings:  settings,
		clock:     clock,
		scheduler: anim.NewScheduler(clock),
		render:    render,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
	}
	s.renderer = grid.NewRenderer(s.layout())
	s.cancel = s.scheduler.Subscribe(s.draw)
	s.regenerate()
	return s
}

// freshSeed draws a non-zero base seed; zero means "unset".
func freshSeed() uint32 {
	for {
		if v := seed.Generate(); v != 0 {
			return v
		}
	}
}

func withSeed(st config.Settings) config.Settings {
	if st.Seed == 0 {
		st.Seed = freshSeed()
	}
	return st
}

// SetRand replaces the source used by ActionSurprise.
func (s *Session) SetRand(r *rand.Rand) {
	s.rng = r
}

func (s *Session) layout() grid.Layout {
	return grid.Layout{
		Cols:     s.settings.GridSize,
		TileSize: s.render.TileSize,
		Gap:      s.render.Gap,
		Padding:  s.render.Padding,
	}
}

// regenerate replaces the spec batch wholesale and redraws immediately.
func (s *Session) regenerate() {
	s.settings = s.settings.Normalize()
	s.specs = s.settings.Specs()
	s.renderer.SetLayout(s.layout())
	s.batches++
	s.stale = true
	s.draw(s.clock.Elapsed())
}

// draw is the scheduler subscriber. A paused clock delivers the same time
// on every tick, so an unchanged batch is not redrawn.
func (s *Session) draw(t float64) {
	if !s.stale && s.frame != nil && t == s.frameT {
		return
	}
	s.frame = s.renderer.Frame(s.specs, t)
	s.frameT = t
	s.stale = false
}

// Tick advances one host frame and returns the elapsed time delivered.
func (s *Session) Tick() float64 {
	return s.scheduler.Tick()
}

// Apply performs a viewer action. It reports whether the tile batch was
// rebuilt. ActionExport and ActionQuit belong to the front end and are
// ignored here.
func (s *Session) Apply(a Action) bool {
	switch a {
	case ActionTogglePlay:
		s.settings.IsAnimating = s.clock.Toggle()
	case ActionReset:
		s.clock.Reset()
		s.draw(s.clock.Elapsed())
	case ActionSpeedDown:
		s.settings.AnimationSpeed = s.clock.StepSpeed(-1)
	case ActionSpeedUp:
		s.settings.AnimationSpeed = s.clock.StepSpeed(1)
	case ActionNewSeed, ActionRegenerate:
		s.settings.Seed = freshSeed()
	case ActionSurprise:
		s.settings = config.Surprise(s.settings, s.rng)
		s.clock.SetSpeed(s.settings.AnimationSpeed)
	case ActionDesigner:
		s.settings.DesignerMode = !s.settings.DesignerMode
	case ActionNextPalette:
		s.settings.Palette = palette.Next(s.settings.Palette)
	case ActionComplexityDown:
		s.settings.Complexity--
	case ActionComplexityUp:
		s.settings.Complexity++
	case ActionGridShrink:
		s.settings.GridSize--
	case ActionGridGrow:
		s.settings.GridSize++
	case ActionResetDefaults:
		defaults := config.DefaultSettings()
		defaults.Seed = freshSeed()
		s.SetSettings(defaults)
		return true
	default:
		return false
	}

	switch a {
	case ActionTogglePlay, ActionReset, ActionSpeedDown, ActionSpeedUp:
		return false
	}
	s.regenerate()
	return true
}

// SetSettings replaces every setting and rebuilds the batch. A zero seed is
// replaced by a fresh one.
func (s *Session) SetSettings(settings config.Settings) {
	s.settings = withSeed(settings.Normalize())
	s.clock.SetSpeed(s.settings.AnimationSpeed)
	s.clock.SetPlaying(s.settings.IsAnimating)
	s.regenerate()
}

// Settings returns the current settings, with play state and speed taken
// from the clock.
func (s *Session) Settings() config.Settings {
	out := s.settings
	out.IsAnimating = s.clock.Playing()
	out.AnimationSpeed = s.clock.Speed()
	return out
}

// Specs returns the current tile batch.
func (s *Session) Specs() []tiles.Spec {
	return s.specs
}

// Frame returns the most recently drawn frame.
func (s *Session) Frame() *image.RGBA {
	return s.frame
}

// Elapsed returns the animation time of the current frame.
func (s *Session) Elapsed() float64 {
	return s.frameT
}

// Batches counts how many times the tile batch has been built.
func (s *Session) Batches() int {
	return s.batches
}

// Clock returns the session clock.
func (s *Session) Clock() *anim.Clock {
	return s.clock
}

// Scheduler returns the session scheduler so front ends can subscribe
// their own per-frame work.
func (s *Session) Scheduler() *anim.Scheduler {
	return s.scheduler
}

// Close detaches the session from its scheduler.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Status summarises the session on one line.
func (s *Session) Status() string {
	st := s.Settings()
	state := "paused"
	if st.IsAnimating {
		state = "playing"
	}
	designer := ""
	if st.DesignerMode {
		designer = " · designer"
	}
	return fmt.Sprintf("#%s · %s · %dx%d · complexity %d/%d · %sx · %s%s",
		seed.Display(st.Seed),
		st.Palette, st.GridSize, st.GridSize,
		st.Complexity, pattern.MaxComplexity,
		strconv.FormatFloat(st.AnimationSpeed, 'f', -1, 64),
		state, designer)
}
