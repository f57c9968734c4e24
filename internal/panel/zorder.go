package panel

// Stacking order helpers. Only ordering matters, never the absolute value;
// Z values grow without renumbering over a session, which trades a bounded
// integer for simpler bookkeeping.

// MaxZ returns the greatest Z among open panels, or 0 when none are open.
func MaxZ(states map[Kind]*State) int {
	max := 0
	for _, st := range states {
		if st.Open && st.Z > max {
			max = st.Z
		}
	}
	return max
}

// NextZ returns the Z value that places a panel above all open panels.
func NextZ(states map[Kind]*State) int {
	return MaxZ(states) + 1
}

// IsTopmost reports whether the panel holds the greatest Z among open panels.
func IsTopmost(states map[Kind]*State, k Kind) bool {
	st, ok := states[k]
	if !ok || !st.Open {
		return false
	}
	return st.Z == MaxZ(states)
}
