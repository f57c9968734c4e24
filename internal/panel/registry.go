package panel

import (
	"sync"

	"github.com/1broseidon/stagehand/internal/geom"
)

// Default describes a panel's startup geometry and visibility.
type Default struct {
	Rect geom.Rect
	Open bool
}

// RenderFunc observes committed snapshots. It is invoked once per mutation,
// after the registry lock is released, with a snapshot the receiver owns.
type RenderFunc func(Snapshot)

// Registry is the authoritative owner of panel state. All mutations clamp
// through geom.Clamp against the current stage rectangle before committing,
// so no code path can publish an out-of-bounds or degenerate panel.
type Registry struct {
	mu     sync.Mutex
	stage  geom.Rect
	min    geom.Size
	states map[Kind]*State

	onCommit RenderFunc
}

// NewRegistry creates a registry with one state per panel kind. Defaults are
// clamped against the initial stage; kinds missing from defaults start closed
// with a zero rect and are clamped into shape on first open or reflow.
func NewRegistry(stage geom.Rect, min geom.Size, defaults map[Kind]Default) *Registry {
	r := &Registry{
		stage:  stage,
		min:    min,
		states: make(map[Kind]*State, len(Kinds())),
	}

	z := 0
	for _, k := range Kinds() {
		d := defaults[k]
		z++
		r.states[k] = &State{
			Open: d.Open,
			Rect: geom.Clamp(d.Rect, stage, min),
			Z:    z,
		}
	}
	return r
}

// SetRenderFunc registers the single render callback. Pass nil to detach.
func (r *Registry) SetRenderFunc(fn RenderFunc) {
	r.mu.Lock()
	r.onCommit = fn
	r.mu.Unlock()
}

// Stage returns the stage rectangle mutations are currently clamped against.
func (r *Registry) Stage() geom.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stage
}

// MinSize returns the minimum panel size.
func (r *Registry) MinSize() geom.Size {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.min
}

// SetMinSize updates the minimum panel size applied by subsequent clamps.
// Existing geometry is untouched until the next mutation or reflow.
func (r *Registry) SetMinSize(min geom.Size) {
	r.mu.Lock()
	r.min = min
	r.mu.Unlock()
}

// Snapshot returns a deep copy of all panel states.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Get returns the committed state for one panel.
func (r *Registry) Get(k Kind) (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.states[k]
	if !ok {
		return State{}, false
	}
	return st.clone(), true
}

// ToggleOpen flips a panel's visibility. A panel becoming open is also
// brought to the front; geometry is untouched either way.
func (r *Registry) ToggleOpen(k Kind) {
	r.mu.Lock()
	st, ok := r.states[k]
	if !ok {
		r.mu.Unlock()
		return
	}

	st.Open = !st.Open
	if st.Open {
		r.bringToFrontLocked(k)
	}
	snap, fn := r.commitLocked()
	r.mu.Unlock()

	notify(fn, snap)
}

// SetGeometry clamps rect against the current stage and commits it. Maximized
// panels ignore incoming geometry; their rect is owned by the maximize state
// until restored.
func (r *Registry) SetGeometry(k Kind, rect geom.Rect) {
	r.mu.Lock()
	st, ok := r.states[k]
	if !ok || st.Maximized {
		r.mu.Unlock()
		return
	}

	st.Rect = geom.Clamp(rect, r.stage, r.min)
	snap, fn := r.commitLocked()
	r.mu.Unlock()

	notify(fn, snap)
}

// BringToFront raises a panel above all open panels. Calling it on the panel
// already on top is a no-op and commits nothing, so focus churn never causes
// redundant re-renders.
func (r *Registry) BringToFront(k Kind) {
	r.mu.Lock()
	if !r.bringToFrontLocked(k) {
		r.mu.Unlock()
		return
	}
	snap, fn := r.commitLocked()
	r.mu.Unlock()

	notify(fn, snap)
}

// ToggleMaximize switches a panel between normal and maximized. Maximizing
// snapshots the current geometry into Restore and fills the stage; restoring
// re-clamps the saved geometry against the current stage, which may have
// changed size in between. Both directions raise the panel.
func (r *Registry) ToggleMaximize(k Kind) {
	r.mu.Lock()
	st, ok := r.states[k]
	if !ok {
		r.mu.Unlock()
		return
	}

	if st.Maximized {
		restored := st.Rect
		if st.Restore != nil {
			restored = *st.Restore
		}
		st.Rect = geom.Clamp(restored, r.stage, r.min)
		st.Maximized = false
		st.Restore = nil
	} else {
		saved := st.Rect
		st.Restore = &saved
		if !r.stage.Empty() {
			st.Rect = geom.Rect{Width: r.stage.Width, Height: r.stage.Height}
		}
		st.Maximized = true
	}
	r.bringToFrontLocked(k)

	snap, fn := r.commitLocked()
	r.mu.Unlock()

	notify(fn, snap)
}

// Reflow re-clamps every panel against a new stage rectangle. Maximized
// panels are resized to exactly fill the new stage while their Restore rect
// is left untouched; normal panels keep their size where possible and shrink
// only as far as containment requires.
func (r *Registry) Reflow(stage geom.Rect) {
	r.mu.Lock()
	r.stage = stage
	for _, st := range r.states {
		if st.Maximized {
			if !stage.Empty() {
				st.Rect = geom.Rect{Width: stage.Width, Height: stage.Height}
			}
			continue
		}
		st.Rect = geom.Clamp(st.Rect, stage, r.min)
	}
	snap, fn := r.commitLocked()
	r.mu.Unlock()

	notify(fn, snap)
}

// bringToFrontLocked assigns the next Z when k is not already topmost.
// Returns true if the order changed.
func (r *Registry) bringToFrontLocked(k Kind) bool {
	st, ok := r.states[k]
	if !ok || !st.Open {
		return false
	}
	if IsTopmost(r.states, k) {
		return false
	}
	st.Z = NextZ(r.states)
	return true
}

func (r *Registry) snapshotLocked() Snapshot {
	out := make(Snapshot, len(r.states))
	for k, st := range r.states {
		out[k] = st.clone()
	}
	return out
}

// commitLocked captures the snapshot and callback for delivery outside the
// lock. Exactly one snapshot is observable per mutating call.
func (r *Registry) commitLocked() (Snapshot, RenderFunc) {
	return r.snapshotLocked(), r.onCommit
}

func notify(fn RenderFunc, snap Snapshot) {
	if fn != nil {
		fn(snap)
	}
}
