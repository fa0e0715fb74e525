package anim

import (
	"testing"
	"time"
)

func TestSchedulerDeliversElapsed(t *testing.T) {
	c, f := newTestClock()
	s := NewScheduler(c)

	var got []float64
	s.Subscribe(func(elapsed float64) { got = append(got, elapsed) })

	c.Play()
	f.advance(time.Second)
	s.Tick()
	f.advance(time.Second)
	s.Tick()

	if len(got) != 2 || !approx(got[0], 1) || !approx(got[1], 2) {
		t.Errorf("delivered %v, expected [1 2]", got)
	}
	if s.Ticks() != 2 {
		t.Errorf("Ticks() = %d, expected 2", s.Ticks())
	}
}

func TestSchedulerOrderAndCancel(t *testing.T) {
	c, _ := newTestClock()
	s := NewScheduler(c)

	var order []string
	cancelA := s.Subscribe(func(float64) { order = append(order, "a") })
	s.Subscribe(func(float64) { order = append(order, "b") })

	s.Tick()
	cancelA()
	cancelA()
	s.Tick()

	expected := []string{"a", "b", "b"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order[%d] = %q, expected %q", i, order[i], expected[i])
		}
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestSchedulerSelfCancel(t *testing.T) {
	c, _ := newTestClock()
	s := NewScheduler(c)

	calls := 0
	var cancel func()
	cancel = s.Subscribe(func(float64) {
		calls++
		cancel()
	})

	s.Tick()
	s.Tick()
	if calls != 1 {
		t.Errorf("calls = %d, expected 1", calls)
	}
}

func TestPacer(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	p := NewPacer(10)
	p.now = func() time.Time { return now }

	if !p.Due() {
		t.Error("first call should be due")
	}
	now = now.Add(50 * time.Millisecond)
	if p.Due() {
		t.Error("should not be due after half a step")
	}
	now = now.Add(60 * time.Millisecond)
	if !p.Due() {
		t.Error("should be due after a full step")
	}
}
