package tui

import "github.com/1broseidon/stagehand/internal/panel"

// region identifies which part of a panel a point falls on. Buttons sit on
// the title row and win over the drag handle; the resize handle is the
// bottom-right corner cell.
type region int

const (
	regionNone region = iota
	regionClose
	regionMaximize
	regionTitleBar
	regionResize
	regionBody
)

// hitTest resolves a stage-local point to the topmost open panel under it
// and the region hit. Returns ("", regionNone) when the point is on bare
// stage.
func hitTest(snap panel.Snapshot, x, y int) (panel.Kind, region) {
	order := panelsByZ(snap)
	for i := len(order) - 1; i >= 0; i-- {
		k := order[i]
		st := snap[k]
		r := st.Rect
		if x < r.X || y < r.Y || x >= r.X+r.Width || y >= r.Y+r.Height {
			continue
		}
		return k, regionAt(st, x, y)
	}
	return "", regionNone
}

func regionAt(st panel.State, x, y int) region {
	r := st.Rect
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1

	if y == r.Y {
		if hasButtons(r.Width) {
			if x >= right-6 && x <= right-4 {
				return regionMaximize
			}
			if x >= right-3 && x <= right-1 {
				return regionClose
			}
		}
		return regionTitleBar
	}

	if x == right && y == bottom && !st.Maximized {
		return regionResize
	}

	return regionBody
}
