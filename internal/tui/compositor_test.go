package tui

import (
	"strings"
	"testing"

	"github.com/1broseidon/stagehand/internal/geom"
	"github.com/1broseidon/stagehand/internal/panel"
)

func (c *canvas) at(x, y int) cell {
	return c.cells[y*c.w+x]
}

func TestPanelsByZ_AscendingOrder(t *testing.T) {
	snap := panel.Snapshot{
		panel.KindChat:        {Open: true, Z: 5},
		panel.KindJobs:        {Open: true, Z: 2},
		panel.KindAgentConfig: {Open: false, Z: 9},
	}

	order := panelsByZ(snap)
	if len(order) != 2 {
		t.Fatalf("expected 2 open panels, got %d", len(order))
	}
	if order[0] != panel.KindJobs || order[1] != panel.KindChat {
		t.Errorf("unexpected order: %v", order)
	}
}

func TestTopmostOpen(t *testing.T) {
	snap := panel.Snapshot{
		panel.KindChat: {Open: true, Z: 3},
		panel.KindJobs: {Open: false, Z: 7},
	}
	if got := topmostOpen(snap); got != panel.KindChat {
		t.Errorf("expected chat (closed panels excluded), got %q", got)
	}

	if got := topmostOpen(panel.Snapshot{}); got != "" {
		t.Errorf("expected empty kind for empty snapshot, got %q", got)
	}
}

func TestPaintPanel_BordersAndButtons(t *testing.T) {
	c := newCanvas(60, 20)
	st := panel.State{Open: true, Rect: geom.Rect{X: 2, Y: 1, Width: 30, Height: 10}}
	c.paintPanel(panel.KindChat, st, false, 0)

	if got := c.at(2, 1).r; got != '╭' {
		t.Errorf("expected top-left corner, got %q", got)
	}
	if got := c.at(31, 10).r; got != '╯' {
		t.Errorf("expected bottom-right corner, got %q", got)
	}
	// Title starts two cells in.
	if got := c.at(5, 1).r; got != 'C' {
		t.Errorf("expected title rune 'C', got %q", got)
	}
	// Buttons sit right-aligned on the title row: [□] then [x].
	if got := c.at(25, 1).r; got != '[' {
		t.Errorf("expected maximize button open bracket, got %q", got)
	}
	if got := c.at(29, 1).r; got != 'x' {
		t.Errorf("expected close button glyph, got %q", got)
	}
}

func TestPaintPanel_OcclusionIsOpaque(t *testing.T) {
	c := newCanvas(60, 20)
	bottom := panel.State{Open: true, Rect: geom.Rect{X: 0, Y: 0, Width: 30, Height: 12}}
	top := panel.State{Open: true, Rect: geom.Rect{X: 10, Y: 4, Width: 30, Height: 12}}

	c.paintPanel(panel.KindChat, bottom, false, 0)
	// Bottom panel's left border is visible before the overlap.
	if got := c.at(0, 6).r; got != '│' {
		t.Fatalf("expected bottom panel border, got %q", got)
	}

	c.paintPanel(panel.KindJobs, top, true, 0)
	// The top panel's body erases the bottom panel inside the overlap.
	if got := c.at(20, 6); got.r != ' ' || got.s != styleBody {
		t.Errorf("expected opaque body cell in overlap, got %+v", got)
	}
	// Outside the overlap the bottom panel is untouched.
	if got := c.at(0, 6).r; got != '│' {
		t.Errorf("expected bottom panel border outside overlap, got %q", got)
	}
}

func TestPaintPanel_ComposerDivider(t *testing.T) {
	c := newCanvas(60, 20)
	st := panel.State{Open: true, Rect: geom.Rect{X: 0, Y: 0, Width: 40, Height: 14}}
	c.paintPanel(panel.KindChat, st, false, 3)

	// Divider sits composerRows+1 above the bottom border (y=13): y=9.
	if got := c.at(0, 9).r; got != '├' {
		t.Errorf("expected divider left junction, got %q", got)
	}
	if got := c.at(20, 9).r; got != '─' {
		t.Errorf("expected divider rule, got %q", got)
	}
	if got := c.at(39, 9).r; got != '┤' {
		t.Errorf("expected divider right junction, got %q", got)
	}
}

func TestRenderStage_LineCountMatchesHeight(t *testing.T) {
	snap := panel.Snapshot{
		panel.KindChat: {Open: true, Rect: geom.Rect{X: 2, Y: 1, Width: 30, Height: 10}, Z: 1},
	}
	out := renderStage(snap, geom.Rect{Width: 80, Height: 24}, panel.KindChat, 0)

	if lines := strings.Count(out, "\n") + 1; lines != 24 {
		t.Errorf("expected 24 lines, got %d", lines)
	}
}

func TestRenderStage_EmptyStage(t *testing.T) {
	out := renderStage(panel.Snapshot{}, geom.Rect{}, "", 0)
	if out != "" {
		t.Errorf("expected empty render for empty stage, got %q", out)
	}
}
