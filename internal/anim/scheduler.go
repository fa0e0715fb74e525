package anim

import "time"

// Subscriber receives the elapsed animation time on every tick.
type Subscriber func(elapsed float64)

type subscription struct {
	id int
	fn Subscriber
}

// Scheduler fans a host-driven tick out to render callbacks.
// It is not safe for concurrent use; the host loop owns it.
type Scheduler struct {
	clock  *Clock
	subs   []subscription
	nextID int
	ticks  uint64
}

// NewScheduler binds a scheduler to clock.
func NewScheduler(clock *Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// Clock returns the clock the scheduler reads.
func (s *Scheduler) Clock() *Clock {
	return s.clock
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (s *Scheduler) Subscribe(fn Subscriber) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() { s.remove(id) }
}

func (s *Scheduler) remove(id int) {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of live subscriptions.
func (s *Scheduler) Len() int {
	return len(s.subs)
}

// Ticks returns how many ticks have been delivered.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Tick reads the clock once and calls every subscriber in subscription
// order with that value. It returns the elapsed time it delivered.
func (s *Scheduler) Tick() float64 {
	t := s.clock.Elapsed()
	s.ticks++
	// Copy so a subscriber may cancel itself during delivery.
	subs := append([]subscription(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(t)
	}
	return t
}

// Pacer reports when a host loop running faster than the desired frame
// rate should redraw.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer targets fps redraws per second; non-positive values mean 30.
func NewPacer(fps int) *Pacer {
	if fps <= 0 {
		fps = 30
	}
	p := &Pacer{step: time.Second / time.Duration(fps), now: time.Now}
	p.accumulator = p.step
	return p
}

// Due reports whether a redraw is due and consumes one step if so.
func (p *Pacer) Due() bool {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		if p.accumulator > p.step {
			p.accumulator = 0
		}
		return true
	}
	return false
}
