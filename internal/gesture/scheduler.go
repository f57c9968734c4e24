package gesture

import (
	"sync"
	"time"
)

// DefaultFrameInterval approximates a 60Hz render cadence.
const DefaultFrameInterval = 16 * time.Millisecond

// Scheduler defers a callback to the next frame boundary. The controller
// requests at most one callback per outstanding frame; the pending geometry
// it carries is overwritten in place, so whichever implementation fires the
// callback always commits the latest value. Stop cancels anything scheduled.
type Scheduler interface {
	Request(fn func())
	Stop()
}

// TickScheduler fires requested callbacks after a fixed frame interval.
type TickScheduler struct {
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewTickScheduler creates a timer-backed scheduler. A non-positive interval
// falls back to DefaultFrameInterval.
func NewTickScheduler(interval time.Duration) *TickScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickScheduler{interval: interval}
}

// Request schedules fn one frame interval from now.
func (s *TickScheduler) Request(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.timer = time.AfterFunc(s.interval, fn)
}

// Stop cancels any scheduled callback and rejects further requests.
func (s *TickScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// ManualScheduler queues callbacks until Fire is called. Used by tests to
// simulate frame boundaries deterministically.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

// Request queues fn for the next Fire.
func (s *ManualScheduler) Request(fn func()) {
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// Fire runs and clears all queued callbacks, returning how many ran.
func (s *ManualScheduler) Fire() int {
	s.mu.Lock()
	fns := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop discards queued callbacks.
func (s *ManualScheduler) Stop() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}
