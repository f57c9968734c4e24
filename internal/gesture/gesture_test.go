package gesture

import (
	"testing"

	"github.com/1broseidon/stagehand/internal/geom"
	"github.com/1broseidon/stagehand/internal/panel"
)

func newTestRig() (*panel.Registry, *Controller, *ManualScheduler) {
	reg := panel.NewRegistry(
		geom.Rect{Width: 1000, Height: 800},
		geom.Size{Width: 320, Height: 240},
		map[panel.Kind]panel.Default{
			panel.KindChat: {Rect: geom.Rect{X: 100, Y: 100, Width: 400, Height: 300}, Open: true},
			panel.KindJobs: {Rect: geom.Rect{X: 200, Y: 150, Width: 400, Height: 300}, Open: true},
		},
	)
	sched := &ManualScheduler{}
	return reg, NewController(reg, sched), sched
}

func TestBegin_RaisesPanel(t *testing.T) {
	reg, ctl, _ := newTestRig()

	reg.BringToFront(panel.KindJobs)
	if !ctl.Begin(panel.KindChat, KindMove, 150, 120) {
		t.Fatal("Begin should succeed")
	}

	snap := reg.Snapshot()
	if snap[panel.KindChat].Z <= snap[panel.KindJobs].Z {
		t.Errorf("chat z=%d should exceed jobs z=%d after grab",
			snap[panel.KindChat].Z, snap[panel.KindJobs].Z)
	}
}

func TestBegin_SecondPressIgnored(t *testing.T) {
	_, ctl, _ := newTestRig()

	if !ctl.Begin(panel.KindChat, KindMove, 0, 0) {
		t.Fatal("first press should begin a gesture")
	}
	if ctl.Begin(panel.KindJobs, KindMove, 0, 0) {
		t.Error("second press while active should be ignored")
	}
	if !ctl.Active() {
		t.Error("first gesture should still be active")
	}
}

func TestBegin_RejectsMaximizedAndClosed(t *testing.T) {
	reg, ctl, _ := newTestRig()

	reg.ToggleMaximize(panel.KindChat)
	if ctl.Begin(panel.KindChat, KindMove, 0, 0) {
		t.Error("maximized panel should not be draggable")
	}

	reg.ToggleOpen(panel.KindJobs) // now closed
	if ctl.Begin(panel.KindJobs, KindResize, 0, 0) {
		t.Error("closed panel should not be resizable")
	}

	if ctl.Begin(panel.KindAgentConfig, KindMove, 0, 0) {
		t.Error("never-opened panel should not start a gesture")
	}
}

func TestFrameCoalescing_FiftyMovesOneCommit(t *testing.T) {
	reg, ctl, sched := newTestRig()

	ctl.Begin(panel.KindChat, KindMove, 500, 500)

	commits := 0
	reg.SetRenderFunc(func(panel.Snapshot) { commits++ })

	for i := 1; i <= 50; i++ {
		ctl.Update(500+i, 500+2*i)
	}
	if sched.Fire() != 1 {
		t.Error("50 moves should schedule exactly one frame callback")
	}

	if commits != 1 {
		t.Fatalf("commits = %d, want 1", commits)
	}

	// The committed geometry reflects only the final move: total delta
	// (50, 100) applied to the base rect.
	st, _ := reg.Get(panel.KindChat)
	want := geom.Rect{X: 150, Y: 200, Width: 400, Height: 300}
	if st.Rect != want {
		t.Errorf("rect = %+v, want %+v", st.Rect, want)
	}
}

func TestUpdate_DeltasApplyToBaseNotLiveState(t *testing.T) {
	reg, ctl, sched := newTestRig()

	ctl.Begin(panel.KindChat, KindMove, 0, 0)

	// Drag far past the right edge, commit, then drag back. If deltas
	// compounded on the clamped live rect the panel would drift; deriving
	// from base keeps the mapping exact.
	ctl.Update(5000, 0)
	sched.Fire()
	ctl.Update(10, 5)
	sched.Fire()
	ctl.End()

	st, _ := reg.Get(panel.KindChat)
	want := geom.Rect{X: 110, Y: 105, Width: 400, Height: 300}
	if st.Rect != want {
		t.Errorf("rect = %+v, want %+v", st.Rect, want)
	}
}

func TestResize_GrowsFromBase(t *testing.T) {
	reg, ctl, sched := newTestRig()

	ctl.Begin(panel.KindChat, KindResize, 0, 0)
	ctl.Update(120, 80)
	sched.Fire()
	ctl.End()

	st, _ := reg.Get(panel.KindChat)
	want := geom.Rect{X: 100, Y: 100, Width: 520, Height: 380}
	if st.Rect != want {
		t.Errorf("rect = %+v, want %+v", st.Rect, want)
	}
}

func TestResize_ClampedToMinimum(t *testing.T) {
	reg, ctl, sched := newTestRig()

	ctl.Begin(panel.KindChat, KindResize, 0, 0)
	ctl.Update(-2000, -2000)
	sched.Fire()
	ctl.End()

	st, _ := reg.Get(panel.KindChat)
	if st.Rect.Width != 320 || st.Rect.Height != 240 {
		t.Errorf("size = %dx%d, want the 320x240 minimum", st.Rect.Width, st.Rect.Height)
	}
}

func TestEnd_FlushesFinalPendingSynchronously(t *testing.T) {
	reg, ctl, sched := newTestRig()

	ctl.Begin(panel.KindChat, KindMove, 0, 0)
	ctl.Update(30, 40)
	// Release before the frame fires: the final move must still land.
	ctl.End()

	st, _ := reg.Get(panel.KindChat)
	want := geom.Rect{X: 130, Y: 140, Width: 400, Height: 300}
	if st.Rect != want {
		t.Errorf("rect = %+v, want %+v", st.Rect, want)
	}

	// The still-scheduled frame callback finds nothing pending.
	commits := 0
	reg.SetRenderFunc(func(panel.Snapshot) { commits++ })
	sched.Fire()
	if commits != 0 {
		t.Errorf("stale frame callback committed %d times, want 0", commits)
	}
}

func TestClose_CancelsPendingWork(t *testing.T) {
	reg, ctl, sched := newTestRig()

	ctl.Begin(panel.KindChat, KindMove, 0, 0)
	ctl.Update(30, 40)
	ctl.Close()

	commits := 0
	reg.SetRenderFunc(func(panel.Snapshot) { commits++ })
	sched.Fire()

	if commits != 0 {
		t.Errorf("closed controller committed %d times, want 0", commits)
	}
	if ctl.Begin(panel.KindChat, KindMove, 0, 0) {
		t.Error("closed controller accepted a new gesture")
	}
}

func TestCancel_DropsPendingUpdate(t *testing.T) {
	reg, ctl, sched := newTestRig()

	before, _ := reg.Get(panel.KindChat)
	ctl.Begin(panel.KindChat, KindMove, 0, 0)
	ctl.Update(200, 200)
	ctl.Cancel()
	sched.Fire()

	after, _ := reg.Get(panel.KindChat)
	if after.Rect != before.Rect {
		t.Errorf("cancelled gesture moved panel %+v -> %+v", before.Rect, after.Rect)
	}
}
