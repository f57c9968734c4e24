package geom

// Rect represents a panel position and size in stage-local pixel coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size represents a width/height pair.
type Size struct {
	Width  int
	Height int
}

// Padding describes insets applied to the raw display bounds before they
// become the usable stage rectangle.
type Padding struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// Empty reports whether the rect has no usable area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size returns the rect's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Translate returns a copy of r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Grow returns a copy of r with its size adjusted by (dw, dh). Position is
// unchanged; the result may be degenerate and is expected to go through Clamp
// before being committed.
func (r Rect) Grow(dw, dh int) Rect {
	r.Width += dw
	r.Height += dh
	return r
}

// ContainedIn reports whether r lies fully inside stage.
func (r Rect) ContainedIn(stage Rect) bool {
	return r.X >= 0 && r.Y >= 0 &&
		r.X+r.Width <= stage.Width &&
		r.Y+r.Height <= stage.Height
}

// Clamp enforces size and containment invariants for r against a stage
// rectangle. Width and height are clamped to [min, max(min, stageDim)] first;
// position is then clamped to [0, stageDim-size] using the already-clamped
// size, so the result is always fully contained. When the stage is smaller
// than the minimum size the panel degrades to the stage size instead of
// violating containment.
//
// A stage with non-positive width or height means layout has not happened
// yet; Clamp returns r unchanged in that case. Clamp is idempotent:
// Clamp(Clamp(r, s, m), s, m) == Clamp(r, s, m).
func Clamp(r, stage Rect, min Size) Rect {
	if stage.Empty() {
		return r
	}

	r.Width = clampDim(r.Width, min.Width, stage.Width)
	r.Height = clampDim(r.Height, min.Height, stage.Height)

	r.X = clampPos(r.X, r.Width, stage.Width)
	r.Y = clampPos(r.Y, r.Height, stage.Height)

	return r
}

// clampDim clamps a dimension to [min, stageDim], letting the stage win when
// it is smaller than the minimum.
func clampDim(dim, min, stageDim int) int {
	max := stageDim
	if max < min {
		// Stage smaller than the minimum panel size: fill the stage.
		return max
	}
	if dim < min {
		return min
	}
	if dim > max {
		return max
	}
	return dim
}

// clampPos clamps a coordinate to [0, stageDim-size]. size is already
// guaranteed to be <= stageDim by clampDim.
func clampPos(pos, size, stageDim int) int {
	limit := stageDim - size
	if pos < 0 {
		return 0
	}
	if pos > limit {
		return limit
	}
	return pos
}

// ApplyPadding shrinks bounds by the given insets. Dimensions are floored at
// zero; callers treat an empty result as "no usable stage yet".
func ApplyPadding(bounds Rect, p Padding) Rect {
	bounds.X += p.Left
	bounds.Y += p.Top
	bounds.Width -= p.Left + p.Right
	bounds.Height -= p.Top + p.Bottom
	if bounds.Width < 0 {
		bounds.Width = 0
	}
	if bounds.Height < 0 {
		bounds.Height = 0
	}
	return bounds
}
