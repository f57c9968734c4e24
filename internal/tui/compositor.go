package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/stagehand/internal/geom"
	"github.com/1broseidon/stagehand/internal/panel"
)

// cellStyle selects one of the fixed per-cell render styles. Overlapping
// panels make per-panel lipgloss blocks unusable, so panels are painted onto
// a cell grid bottom to top and styled per run at the end.
type cellStyle int

const (
	styleNone cellStyle = iota
	styleBorder
	styleBorderFocused
	styleTitle
	styleTitleFocused
	styleBody
)

type cell struct {
	r rune
	s cellStyle
}

// canvas is a fixed-size grid of styled cells.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', s: styleNone}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, s cellStyle) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, s: s}
}

// paintPanel draws one panel box onto the canvas. The body is filled with
// spaces so panels below are fully occluded.
func (c *canvas) paintPanel(k panel.Kind, st panel.State, focused bool, composerRows int) {
	r := st.Rect
	if r.Width < 2 || r.Height < 2 {
		return
	}

	borderStyle := styleBorder
	titleStyle := styleTitle
	if focused {
		borderStyle = styleBorderFocused
		titleStyle = styleTitleFocused
	}

	// Body fill first, borders over it.
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			c.set(x, y, ' ', styleBody)
		}
	}

	top := r.Y
	bottom := r.Y + r.Height - 1
	left := r.X
	right := r.X + r.Width - 1

	for x := left + 1; x < right; x++ {
		c.set(x, top, '─', borderStyle)
		c.set(x, bottom, '─', borderStyle)
	}
	for y := top + 1; y < bottom; y++ {
		c.set(left, y, '│', borderStyle)
		c.set(right, y, '│', borderStyle)
	}
	c.set(left, top, '╭', borderStyle)
	c.set(right, top, '╮', borderStyle)
	c.set(left, bottom, '╰', borderStyle)
	// The bottom-right corner doubles as the resize handle.
	c.set(right, bottom, '╯', borderStyle)

	// Title text on the top border.
	title := []rune(" " + panelTitle(k) + " ")
	for i, ch := range title {
		x := left + 2 + i
		if x >= right-buttonsWidth(r.Width) {
			break
		}
		c.set(x, top, ch, titleStyle)
	}

	// Maximize and close buttons, right-aligned on the title row.
	if hasButtons(r.Width) {
		for i, ch := range []rune(maximizeButton) {
			c.set(right-6+i, top, ch, titleStyle)
		}
		for i, ch := range []rune(closeButton) {
			c.set(right-3+i, top, ch, titleStyle)
		}
	}

	// Composer divider inside the chat panel.
	if k == panel.KindChat && composerRows > 0 {
		dividerY := bottom - composerRows - 1
		if dividerY > top && dividerY < bottom {
			c.set(left, dividerY, '├', borderStyle)
			c.set(right, dividerY, '┤', borderStyle)
			for x := left + 1; x < right; x++ {
				c.set(x, dividerY, '─', borderStyle)
			}
		}
	}
}

const (
	maximizeButton = "[□]"
	closeButton    = "[x]"
)

// hasButtons reports whether a panel is wide enough to carry title buttons.
func hasButtons(width int) bool {
	return width >= 12
}

func buttonsWidth(width int) int {
	if hasButtons(width) {
		return 7
	}
	return 1
}

func panelTitle(k panel.Kind) string {
	switch k {
	case panel.KindChat:
		return "Chat"
	case panel.KindJobs:
		return "Jobs"
	case panel.KindAgentConfig:
		return "Agent Config"
	default:
		return string(k)
	}
}

var renderStyles = map[cellStyle]lipgloss.Style{
	styleNone:          lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	styleBorder:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	styleBorderFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	styleTitle:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	styleTitleFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	styleBody:          lipgloss.NewStyle(),
}

// render flattens the canvas into a terminal string, styling runs of
// identically styled cells together.
func (c *canvas) render() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run []rune
		runStyle := styleNone
		flush := func() {
			if len(run) == 0 {
				return
			}
			b.WriteString(renderStyles[runStyle].Render(string(run)))
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if cl.s != runStyle {
				flush()
				runStyle = cl.s
			}
			run = append(run, cl.r)
		}
		flush()
	}
	return b.String()
}

// renderStage paints all open panels bottom to top and returns the composed
// frame. focused is the topmost open panel.
func renderStage(snap panel.Snapshot, stageRect geom.Rect, focused panel.Kind, composerRows int) string {
	c := newCanvas(stageRect.Width, stageRect.Height)
	for _, k := range panelsByZ(snap) {
		rows := 0
		if k == panel.KindChat {
			rows = composerRows
		}
		c.paintPanel(k, snap[k], k == focused, rows)
	}
	return c.render()
}

// panelsByZ returns open panels in ascending z order.
func panelsByZ(snap panel.Snapshot) []panel.Kind {
	var kinds []panel.Kind
	for _, k := range panel.Kinds() {
		if st, ok := snap[k]; ok && st.Open {
			kinds = append(kinds, k)
		}
	}
	for i := 1; i < len(kinds); i++ {
		for j := i; j > 0 && snap[kinds[j-1]].Z > snap[kinds[j]].Z; j-- {
			kinds[j-1], kinds[j] = kinds[j], kinds[j-1]
		}
	}
	return kinds
}

// topmostOpen returns the open panel with the highest z, or "" when all
// panels are closed.
func topmostOpen(snap panel.Snapshot) panel.Kind {
	best := panel.Kind("")
	bestZ := 0
	for k, st := range snap {
		if st.Open && st.Z > bestZ {
			best = k
			bestZ = st.Z
		}
	}
	return best
}
