package geom

import "testing"

var defaultMin = Size{Width: 320, Height: 240}

func TestClamp_CorrectsOverhang(t *testing.T) {
	stage := Rect{Width: 1000, Height: 800}

	got := Clamp(Rect{X: 700, Y: 750, Width: 600, Height: 500}, stage, defaultMin)
	want := Rect{X: 400, Y: 300, Width: 600, Height: 500}
	if got != want {
		t.Errorf("Clamp = %+v, want %+v", got, want)
	}
}

func TestClamp_Idempotent(t *testing.T) {
	stages := []Rect{
		{Width: 1000, Height: 800},
		{Width: 500, Height: 400},
		{Width: 320, Height: 240},
		{Width: 100, Height: 100}, // smaller than the minimum panel size
		{Width: 0, Height: 0},     // not laid out yet
		{Width: -5, Height: 600},
	}
	rects := []Rect{
		{X: 0, Y: 0, Width: 320, Height: 240},
		{X: -50, Y: -50, Width: 600, Height: 500},
		{X: 700, Y: 750, Width: 600, Height: 500},
		{X: 10, Y: 10, Width: 10, Height: 10},
		{X: 2000, Y: 2000, Width: 5000, Height: 5000},
		{X: -100, Y: 900, Width: 0, Height: -20},
	}

	for _, s := range stages {
		for _, r := range rects {
			once := Clamp(r, s, defaultMin)
			twice := Clamp(once, s, defaultMin)
			if once != twice {
				t.Errorf("Clamp not idempotent for r=%+v s=%+v: first=%+v second=%+v",
					r, s, once, twice)
			}
		}
	}
}

func TestClamp_Containment(t *testing.T) {
	stage := Rect{Width: 1000, Height: 800}
	rects := []Rect{
		{X: -50, Y: -50, Width: 600, Height: 500},
		{X: 700, Y: 750, Width: 600, Height: 500},
		{X: 0, Y: 0, Width: 5000, Height: 5000},
		{X: 999, Y: 799, Width: 10, Height: 10},
	}

	for _, r := range rects {
		got := Clamp(r, stage, defaultMin)
		if !got.ContainedIn(stage) {
			t.Errorf("Clamp(%+v) = %+v escapes stage %+v", r, got, stage)
		}
	}
}

func TestClamp_MinimumSize(t *testing.T) {
	stage := Rect{Width: 1000, Height: 800}

	got := Clamp(Rect{X: 10, Y: 10, Width: 50, Height: 40}, stage, defaultMin)
	if got.Width != 320 || got.Height != 240 {
		t.Errorf("size = %dx%d, want 320x240", got.Width, got.Height)
	}
}

func TestClamp_StageSmallerThanMinimum(t *testing.T) {
	// A 200x150 stage cannot hold a 320x240 panel; the panel fills the
	// stage instead of escaping it.
	stage := Rect{Width: 200, Height: 150}

	got := Clamp(Rect{X: 40, Y: 40, Width: 600, Height: 500}, stage, defaultMin)
	want := Rect{X: 0, Y: 0, Width: 200, Height: 150}
	if got != want {
		t.Errorf("Clamp = %+v, want %+v", got, want)
	}
}

func TestClamp_DegenerateStageIsNoOp(t *testing.T) {
	r := Rect{X: -50, Y: 9000, Width: 3, Height: -7}

	for _, stage := range []Rect{
		{Width: 0, Height: 800},
		{Width: 1000, Height: 0},
		{Width: -1, Height: -1},
	} {
		if got := Clamp(r, stage, defaultMin); got != r {
			t.Errorf("Clamp with stage %+v = %+v, want input %+v unchanged", stage, got, r)
		}
	}
}

func TestTranslateAndGrow(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 320, Height: 240}

	if got := r.Translate(5, -5); got != (Rect{X: 15, Y: 15, Width: 320, Height: 240}) {
		t.Errorf("Translate = %+v", got)
	}
	if got := r.Grow(30, 40); got != (Rect{X: 10, Y: 20, Width: 350, Height: 280}) {
		t.Errorf("Grow = %+v", got)
	}
	// The receiver is unchanged.
	if r != (Rect{X: 10, Y: 20, Width: 320, Height: 240}) {
		t.Errorf("receiver mutated: %+v", r)
	}
}

func TestApplyPadding(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	p := Padding{Top: 30, Bottom: 10, Left: 20, Right: 20}

	got := ApplyPadding(bounds, p)
	want := Rect{X: 20, Y: 30, Width: 1880, Height: 1040}
	if got != want {
		t.Errorf("ApplyPadding = %+v, want %+v", got, want)
	}

	// Oversized padding floors at zero rather than going negative.
	tiny := ApplyPadding(Rect{Width: 30, Height: 30}, Padding{Left: 20, Right: 20, Top: 40})
	if tiny.Width != 0 || tiny.Height != 0 {
		t.Errorf("oversized padding = %+v, want zero size", tiny)
	}
}
