// Package gesture turns pointer input into registry mutations. One gesture
// at a time translates press/move/release sequences into clamped geometry
// commits, coalesced to at most one commit per frame.
package gesture

import (
	"log"
	"sync"

	"github.com/1broseidon/stagehand/internal/geom"
	"github.com/1broseidon/stagehand/internal/panel"
)

// Kind distinguishes a move gesture from a resize gesture.
type Kind int

const (
	// KindMove drags a panel by its title bar.
	KindMove Kind = iota
	// KindResize drags a panel's resize handle.
	KindResize
)

// String returns the string representation of the gesture kind.
func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Controller runs the single-gesture state machine. A press on a panel's
// drag or resize handle begins a gesture; each move derives a candidate rect
// from the geometry captured at press time plus the total pointer delta, so
// many small deltas never compound clamp-boundary drift. Candidates are
// recorded as the pending update and committed at most once per frame by the
// scheduler; release flushes the final pending update synchronously.
//
// A second press while a gesture is active is ignored. Per-pointer gesture
// contexts are a deliberate extension point, not implemented here.
type Controller struct {
	reg   *panel.Registry
	sched Scheduler

	mu           sync.Mutex
	active       bool
	kind         Kind
	target       panel.Kind
	startX       int
	startY       int
	base         geom.Rect
	pending      *geom.Rect
	framePending bool
	closed       bool
}

// NewController creates a gesture controller committing into reg, coalescing
// commits through sched.
func NewController(reg *panel.Registry, sched Scheduler) *Controller {
	return &Controller{reg: reg, sched: sched}
}

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Begin starts a gesture at pointer position (x, y). It returns false when
// the press cannot start a gesture: a gesture is already active, the panel is
// closed, missing, or maximized, or the controller is closed. A successful
// begin raises the panel.
func (c *Controller) Begin(target panel.Kind, kind Kind, x, y int) bool {
	c.mu.Lock()
	if c.closed || c.active {
		c.mu.Unlock()
		return false
	}

	st, ok := c.reg.Get(target)
	if !ok || !st.Open || st.Maximized {
		c.mu.Unlock()
		return false
	}

	c.active = true
	c.kind = kind
	c.target = target
	c.startX = x
	c.startY = y
	c.base = st.Rect
	c.pending = nil
	c.mu.Unlock()

	c.reg.BringToFront(target)
	log.Printf("gesture: %s began on %s at (%d,%d)", kind, target, x, y)
	return true
}

// Update records pointer movement to (x, y). The candidate rect is always
// derived from the base geometry captured at Begin, clamped against the
// current stage, and stored as the pending update; a frame callback is
// scheduled only if none is outstanding.
func (c *Controller) Update(x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}

	dx := x - c.startX
	dy := y - c.startY

	var candidate geom.Rect
	switch c.kind {
	case KindResize:
		candidate = c.base.Grow(dx, dy)
	default:
		candidate = c.base.Translate(dx, dy)
	}
	clamped := geom.Clamp(candidate, c.reg.Stage(), c.reg.MinSize())
	c.pending = &clamped

	if !c.framePending {
		c.framePending = true
		c.sched.Request(c.commitFrame)
	}
}

// End finishes the gesture, flushing any pending update synchronously so the
// final geometry always reflects the last move before release.
func (c *Controller) End() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}

	c.active = false
	target := c.target
	kind := c.kind
	rect := c.takePendingLocked()
	c.mu.Unlock()

	if rect != nil {
		c.reg.SetGeometry(target, *rect)
	}
	log.Printf("gesture: %s ended on %s", kind, target)
}

// Cancel abandons the gesture without committing the pending update.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = false
	c.pending = nil
}

// Close cancels any active gesture and stops the scheduler. Used on host
// teardown so no scheduled frame can act on a detached registry.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.active = false
	c.pending = nil
	c.mu.Unlock()

	c.sched.Stop()
}

// commitFrame is the scheduled frame callback: it commits the latest pending
// update, if one is still outstanding, and clears the pending slot.
func (c *Controller) commitFrame() {
	c.mu.Lock()
	target := c.target
	rect := c.takePendingLocked()
	c.mu.Unlock()

	if rect != nil {
		c.reg.SetGeometry(target, *rect)
	}
}

// takePendingLocked consumes the pending update and clears the outstanding
// frame marker so the next Update schedules a fresh callback.
func (c *Controller) takePendingLocked() *geom.Rect {
	rect := c.pending
	c.pending = nil
	c.framePending = false
	return rect
}
