package panel

import (
	"testing"

	"github.com/1broseidon/stagehand/internal/geom"
)

var testMin = geom.Size{Width: 320, Height: 240}

func testDefaults() map[Kind]Default {
	return map[Kind]Default{
		KindChat:        {Rect: geom.Rect{X: 40, Y: 40, Width: 520, Height: 520}, Open: true},
		KindJobs:        {Rect: geom.Rect{X: 120, Y: 80, Width: 400, Height: 300}, Open: true},
		KindAgentConfig: {Rect: geom.Rect{X: 200, Y: 120, Width: 360, Height: 280}, Open: false},
	}
}

func newTestRegistry() *Registry {
	return NewRegistry(geom.Rect{Width: 1000, Height: 800}, testMin, testDefaults())
}

func TestNewRegistry_CreatesAllKinds(t *testing.T) {
	r := newTestRegistry()
	snap := r.Snapshot()

	if len(snap) != len(Kinds()) {
		t.Fatalf("snapshot has %d panels, want %d", len(snap), len(Kinds()))
	}
	for _, k := range Kinds() {
		if _, ok := snap[k]; !ok {
			t.Errorf("missing state for %s", k)
		}
	}

	// Startup Z values induce a strict order.
	seen := make(map[int]Kind)
	for k, st := range snap {
		if prev, dup := seen[st.Z]; dup {
			t.Errorf("duplicate z=%d for %s and %s", st.Z, prev, k)
		}
		seen[st.Z] = k
	}
}

func TestBringToFront_TopmostIsNoOp(t *testing.T) {
	r := newTestRegistry()

	r.BringToFront(KindChat)
	before := r.Snapshot()

	commits := 0
	r.SetRenderFunc(func(Snapshot) { commits++ })

	r.BringToFront(KindChat)
	after := r.Snapshot()

	if commits != 0 {
		t.Errorf("raising the topmost panel committed %d snapshots, want 0", commits)
	}
	for _, k := range Kinds() {
		if before[k].Z != after[k].Z {
			t.Errorf("%s z changed %d -> %d", k, before[k].Z, after[k].Z)
		}
	}
}

func TestBringToFront_AssignsMaxPlusOne(t *testing.T) {
	r := newTestRegistry()

	r.BringToFront(KindJobs)
	r.BringToFront(KindChat)

	snap := r.Snapshot()
	if snap[KindChat].Z <= snap[KindJobs].Z {
		t.Errorf("chat z=%d should exceed jobs z=%d", snap[KindChat].Z, snap[KindJobs].Z)
	}
}

func TestToggleOpen_RaisesOnOpen(t *testing.T) {
	r := newTestRegistry()

	r.ToggleOpen(KindAgentConfig)
	snap := r.Snapshot()

	st := snap[KindAgentConfig]
	if !st.Open {
		t.Fatal("panel should be open")
	}
	for _, k := range []Kind{KindChat, KindJobs} {
		if st.Z <= snap[k].Z {
			t.Errorf("opened panel z=%d not above %s z=%d", st.Z, k, snap[k].Z)
		}
	}

	// Closing leaves geometry untouched.
	rect := st.Rect
	r.ToggleOpen(KindAgentConfig)
	snap = r.Snapshot()
	if snap[KindAgentConfig].Open {
		t.Error("panel should be closed")
	}
	if snap[KindAgentConfig].Rect != rect {
		t.Errorf("close changed geometry %+v -> %+v", rect, snap[KindAgentConfig].Rect)
	}
}

func TestSetGeometry_Clamps(t *testing.T) {
	r := newTestRegistry()

	r.SetGeometry(KindChat, geom.Rect{X: 700, Y: 750, Width: 600, Height: 500})

	st, _ := r.Get(KindChat)
	want := geom.Rect{X: 400, Y: 300, Width: 600, Height: 500}
	if st.Rect != want {
		t.Errorf("rect = %+v, want %+v", st.Rect, want)
	}
}

func TestSetGeometry_IgnoredWhileMaximized(t *testing.T) {
	r := newTestRegistry()

	r.ToggleMaximize(KindChat)
	r.SetGeometry(KindChat, geom.Rect{X: 10, Y: 10, Width: 400, Height: 400})

	st, _ := r.Get(KindChat)
	if st.Rect != (geom.Rect{Width: 1000, Height: 800}) {
		t.Errorf("maximized rect moved to %+v", st.Rect)
	}
}

func TestToggleMaximize_RoundTrip(t *testing.T) {
	r := newTestRegistry()

	r.ToggleMaximize(KindChat)
	st, _ := r.Get(KindChat)

	if !st.Maximized {
		t.Fatal("panel should be maximized")
	}
	if st.Rect != (geom.Rect{X: 0, Y: 0, Width: 1000, Height: 800}) {
		t.Errorf("maximized rect = %+v, want full stage", st.Rect)
	}
	if st.Restore == nil {
		t.Fatal("restore rect missing while maximized")
	}
	if *st.Restore != (geom.Rect{X: 40, Y: 40, Width: 520, Height: 520}) {
		t.Errorf("restore = %+v, want original geometry", *st.Restore)
	}

	r.ToggleMaximize(KindChat)
	st, _ = r.Get(KindChat)

	if st.Maximized {
		t.Fatal("panel should be restored")
	}
	if st.Restore != nil {
		t.Error("restore rect should be cleared after un-maximize")
	}
	if st.Rect != (geom.Rect{X: 40, Y: 40, Width: 520, Height: 520}) {
		t.Errorf("restored rect = %+v, want exact original", st.Rect)
	}
}

func TestToggleMaximize_RestoreReclampedAfterStageShrink(t *testing.T) {
	r := newTestRegistry()

	r.ToggleMaximize(KindChat)
	r.Reflow(geom.Rect{Width: 500, Height: 400})
	r.ToggleMaximize(KindChat)

	st, _ := r.Get(KindChat)
	stage := geom.Rect{Width: 500, Height: 400}
	if !st.Rect.ContainedIn(stage) {
		t.Errorf("restored rect %+v escapes shrunken stage", st.Rect)
	}
}

func TestReflow_Containment(t *testing.T) {
	r := newTestRegistry()
	r.SetGeometry(KindChat, geom.Rect{X: 400, Y: 300, Width: 600, Height: 500})

	newStage := geom.Rect{Width: 500, Height: 400}
	r.Reflow(newStage)

	for k, st := range r.Snapshot() {
		if !st.Rect.ContainedIn(newStage) {
			t.Errorf("%s rect %+v escapes stage %+v after reflow", k, st.Rect, newStage)
		}
	}
}

func TestReflow_MaximizedFillsNewStage(t *testing.T) {
	r := newTestRegistry()

	r.ToggleMaximize(KindJobs)
	restoreBefore := *mustGet(t, r, KindJobs).Restore

	r.Reflow(geom.Rect{Width: 1400, Height: 900})

	st := mustGet(t, r, KindJobs)
	if st.Rect != (geom.Rect{Width: 1400, Height: 900}) {
		t.Errorf("maximized rect = %+v, want new full stage", st.Rect)
	}
	if st.Restore == nil || *st.Restore != restoreBefore {
		t.Errorf("reflow disturbed restore rect: %+v", st.Restore)
	}
}

func TestEveryMutationCommitsOneSnapshot(t *testing.T) {
	r := newTestRegistry()

	commits := 0
	r.SetRenderFunc(func(Snapshot) { commits++ })

	r.SetGeometry(KindChat, geom.Rect{X: 1, Y: 1, Width: 400, Height: 300})
	r.ToggleOpen(KindAgentConfig)
	r.ToggleMaximize(KindJobs)
	r.Reflow(geom.Rect{Width: 900, Height: 700})

	if commits != 4 {
		t.Errorf("commits = %d, want 4", commits)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	r := newTestRegistry()
	snap := r.Snapshot()

	st := snap[KindChat]
	st.Rect.X = 9999
	snap[KindChat] = st

	fresh, _ := r.Get(KindChat)
	if fresh.Rect.X == 9999 {
		t.Error("mutating a snapshot leaked into the registry")
	}
}

func mustGet(t *testing.T, r *Registry, k Kind) State {
	t.Helper()
	st, ok := r.Get(k)
	if !ok {
		t.Fatalf("no state for %s", k)
	}
	return st
}
